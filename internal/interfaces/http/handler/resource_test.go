package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeStore delegates each store method to a function field, nil fields fail
// the test if called
type fakeStore[M any] struct {
	t          *testing.T
	findAllFn  func() ([]M, error)
	findByIDFn func(id uint) (*M, error)
	createFn   func(record *M) error
	saveFn     func(record *M) error
	deleteFn   func(id uint) (*M, error)
}

func (s *fakeStore[M]) FindAll(context.Context) ([]M, error) {
	if s.findAllFn == nil {
		s.t.Fatal("unexpected FindAll call")
	}
	return s.findAllFn()
}

func (s *fakeStore[M]) FindByID(_ context.Context, id uint) (*M, error) {
	if s.findByIDFn == nil {
		s.t.Fatal("unexpected FindByID call")
	}
	return s.findByIDFn(id)
}

func (s *fakeStore[M]) Create(_ context.Context, record *M) error {
	if s.createFn == nil {
		s.t.Fatal("unexpected Create call")
	}
	return s.createFn(record)
}

func (s *fakeStore[M]) Save(_ context.Context, record *M) error {
	if s.saveFn == nil {
		s.t.Fatal("unexpected Save call")
	}
	return s.saveFn(record)
}

func (s *fakeStore[M]) DeleteByID(_ context.Context, id uint) (*M, error) {
	if s.deleteFn == nil {
		s.t.Fatal("unexpected DeleteByID call")
	}
	return s.deleteFn(id)
}

func setupWarehouseRouter(t *testing.T, store *fakeStore[models.Warehouse]) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewWarehouseHandler(store, zap.NewNop()).RegisterRoutes(router)
	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCRUDHandler_List(t *testing.T) {
	t.Run("returns all records as a bare array", func(t *testing.T) {
		store := &fakeStore[models.Warehouse]{t: t, findAllFn: func() ([]models.Warehouse, error) {
			return []models.Warehouse{
				{ID: 1, WarehouseID: "WH001", WarehouseName: "Main", Location: "North"},
				{ID: 2, WarehouseID: "WH002", WarehouseName: "Spare", Location: "South"},
			}, nil
		}}
		router := setupWarehouseRouter(t, store)

		w := performRequest(router, http.MethodGet, "/warehouses", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var got []models.Warehouse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "WH001", got[0].WarehouseID)
		assert.Equal(t, "Spare", got[1].WarehouseName)
	})

	t.Run("empty store yields empty array, not null", func(t *testing.T) {
		store := &fakeStore[models.Warehouse]{t: t, findAllFn: func() ([]models.Warehouse, error) {
			return nil, nil
		}}
		router := setupWarehouseRouter(t, store)

		w := performRequest(router, http.MethodGet, "/warehouses", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("store failure yields 500 with generic message", func(t *testing.T) {
		store := &fakeStore[models.Warehouse]{t: t, findAllFn: func() ([]models.Warehouse, error) {
			return nil, errors.New("connection reset")
		}}
		router := setupWarehouseRouter(t, store)

		w := performRequest(router, http.MethodGet, "/warehouses", nil)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"An error occurred while fetching warehouses"}`, w.Body.String())
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}

func TestCRUDHandler_Create(t *testing.T) {
	t.Run("creates record and returns it with assigned id", func(t *testing.T) {
		store := &fakeStore[models.Warehouse]{t: t, createFn: func(record *models.Warehouse) error {
			record.ID = 42
			return nil
		}}
		router := setupWarehouseRouter(t, store)

		w := performRequest(router, http.MethodPost, "/warehouses", gin.H{
			"warehouse_id":   "WH003",
			"warehouse_name": "New",
			"location":       "East",
		})

		require.Equal(t, http.StatusOK, w.Code)
		var got models.Warehouse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, uint(42), got.ID)
		assert.Equal(t, "WH003", got.WarehouseID)
	})

	t.Run("client supplied id is ignored", func(t *testing.T) {
		store := &fakeStore[models.Warehouse]{t: t, createFn: func(record *models.Warehouse) error {
			assert.Zero(t, record.ID)
			record.ID = 7
			return nil
		}}
		router := setupWarehouseRouter(t, store)

		w := performRequest(router, http.MethodPost, "/warehouses", gin.H{
			"id":             999,
			"warehouse_id":   "WH003",
			"warehouse_name": "New",
			"location":       "East",
		})

		require.Equal(t, http.StatusOK, w.Code)
		var got models.Warehouse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, uint(7), got.ID)
	})

	t.Run("missing required field yields 400 before any store call", func(t *testing.T) {
		store := &fakeStore[models.Warehouse]{t: t}
		router := setupWarehouseRouter(t, store)

		w := performRequest(router, http.MethodPost, "/warehouses", gin.H{
			"warehouse_id": "WH003",
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp["error"], "Invalid request body")
	})

	t.Run("store failure yields 500", func(t *testing.T) {
		store := &fakeStore[models.Warehouse]{t: t, createFn: func(*models.Warehouse) error {
			return errors.New("disk full")
		}}
		router := setupWarehouseRouter(t, store)

		w := performRequest(router, http.MethodPost, "/warehouses", gin.H{
			"warehouse_id":   "WH003",
			"warehouse_name": "New",
			"location":       "East",
		})

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"An error occurred while creating warehouse"}`, w.Body.String())
	})
}

func TestCRUDHandler_Update(t *testing.T) {
	body := gin.H{
		"warehouse_id":   "WH001",
		"warehouse_name": "Renamed",
		"location":       "West",
	}

	t.Run("updates existing record", func(t *testing.T) {
		var saved *models.Warehouse
		store := &fakeStore[models.Warehouse]{
			t: t,
			findByIDFn: func(id uint) (*models.Warehouse, error) {
				return &models.Warehouse{ID: id, WarehouseID: "WH001", WarehouseName: "Main"}, nil
			},
			saveFn: func(record *models.Warehouse) error {
				saved = record
				return nil
			},
		}
		router := setupWarehouseRouter(t, store)

		w := performRequest(router, http.MethodPut, "/warehouses/5", body)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, saved)
		assert.Equal(t, uint(5), saved.ID)
		assert.Equal(t, "Renamed", saved.WarehouseName)

		var resp struct {
			Message   string           `json:"message"`
			Warehouse models.Warehouse `json:"warehouse"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Warehouse updated successfully", resp.Message)
		assert.Equal(t, uint(5), resp.Warehouse.ID)
	})

	t.Run("missing record yields 404", func(t *testing.T) {
		store := &fakeStore[models.Warehouse]{t: t, findByIDFn: func(uint) (*models.Warehouse, error) {
			return nil, shared.ErrNotFound
		}}
		router := setupWarehouseRouter(t, store)

		w := performRequest(router, http.MethodPut, "/warehouses/99", body)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Warehouse not found"}`, w.Body.String())
	})

	t.Run("non numeric id yields 400", func(t *testing.T) {
		store := &fakeStore[models.Warehouse]{t: t}
		router := setupWarehouseRouter(t, store)

		w := performRequest(router, http.MethodPut, "/warehouses/abc", body)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid id"}`, w.Body.String())
	})

	t.Run("store failure on save yields 500", func(t *testing.T) {
		store := &fakeStore[models.Warehouse]{
			t: t,
			findByIDFn: func(id uint) (*models.Warehouse, error) {
				return &models.Warehouse{ID: id}, nil
			},
			saveFn: func(*models.Warehouse) error {
				return errors.New("deadlock")
			},
		}
		router := setupWarehouseRouter(t, store)

		w := performRequest(router, http.MethodPut, "/warehouses/5", body)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"An error occurred while updating warehouse"}`, w.Body.String())
	})
}

func TestCRUDHandler_Delete(t *testing.T) {
	t.Run("returns prior state of deleted record", func(t *testing.T) {
		store := &fakeStore[models.Warehouse]{t: t, deleteFn: func(id uint) (*models.Warehouse, error) {
			return &models.Warehouse{ID: id, WarehouseID: "WH001", WarehouseName: "Main", Location: "North"}, nil
		}}
		router := setupWarehouseRouter(t, store)

		w := performRequest(router, http.MethodDelete, "/warehouses/3", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var got models.Warehouse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, uint(3), got.ID)
		assert.Equal(t, "Main", got.WarehouseName)
	})

	t.Run("repeat delete keeps yielding 404", func(t *testing.T) {
		store := &fakeStore[models.Warehouse]{t: t, deleteFn: func(uint) (*models.Warehouse, error) {
			return nil, shared.ErrNotFound
		}}
		router := setupWarehouseRouter(t, store)

		for i := 0; i < 2; i++ {
			w := performRequest(router, http.MethodDelete, "/warehouses/99", nil)
			require.Equal(t, http.StatusNotFound, w.Code)
			assert.JSONEq(t, `{"error":"Warehouse not found"}`, w.Body.String())
		}
	})

	t.Run("non numeric id yields 400", func(t *testing.T) {
		store := &fakeStore[models.Warehouse]{t: t}
		router := setupWarehouseRouter(t, store)

		w := performRequest(router, http.MethodDelete, "/warehouses/abc", nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid id"}`, w.Body.String())
	})

	t.Run("store failure yields 500", func(t *testing.T) {
		store := &fakeStore[models.Warehouse]{t: t, deleteFn: func(uint) (*models.Warehouse, error) {
			return nil, errors.New("timeout")
		}}
		router := setupWarehouseRouter(t, store)

		w := performRequest(router, http.MethodDelete, "/warehouses/3", nil)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"An error occurred while deleting the warehouse"}`, w.Body.String())
	})
}

func TestExpenseRequest_DateConversion(t *testing.T) {
	var created *models.Expense
	store := &fakeStore[models.Expense]{t: t, createFn: func(record *models.Expense) error {
		created = record
		record.ID = 1
		return nil
	}}
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewExpenseHandler(store, zap.NewNop()).RegisterRoutes(router)

	// 2024-01-15T00:00:00Z in epoch milliseconds
	w := performRequest(router, http.MethodPost, "/expenses", gin.H{
		"expense_id":   "EXP001",
		"expense_name": "Office Supplies",
		"description":  "Stationery",
		"amount":       125.50,
		"expense_date": 1705276800000,
		"category":     "Operations",
		"user_id":      1,
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, created)
	assert.Equal(t, 2024, created.ExpenseDate.Year())
	assert.Equal(t, "2024-01-15T00:00:00Z", created.ExpenseDate.Format("2006-01-02T15:04:05Z07:00"))
	assert.Equal(t, 125.50, created.Amount)
}

func TestCRUDHandler_ZeroNumericFieldIsPresent(t *testing.T) {
	store := &fakeStore[models.Product]{t: t, createFn: func(record *models.Product) error {
		record.ID = 1
		return nil
	}}
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewProductHandler(store, zap.NewNop()).RegisterRoutes(router)

	w := performRequest(router, http.MethodPost, "/products", gin.H{
		"product_name": "Sample",
		"sku":          "PROD001",
		"unit_price":   0,
	})

	require.Equal(t, http.StatusOK, w.Code)
	var got models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Zero(t, got.UnitPrice)
}
