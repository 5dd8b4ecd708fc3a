package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewDocsHandler("ims-backend", "1.0.0").RegisterRoutes(router)

	t.Run("docs describe every resource path", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/docs", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var spec struct {
			OpenAPI string                     `json:"openapi"`
			Info    map[string]string          `json:"info"`
			Paths   map[string]json.RawMessage `json:"paths"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &spec))
		assert.Equal(t, "3.0.3", spec.OpenAPI)
		assert.Equal(t, "ims-backend", spec.Info["title"])

		for _, path := range []string{
			"/login", "/health",
			"/customers", "/customers/{id}",
			"/products", "/services", "/expenses", "/vendors",
			"/warehouses", "/transactions", "/pics",
			"/pics/{id}",
		} {
			assert.Contains(t, spec.Paths, path)
		}
	})

	t.Run("health reports ok", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/health", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})
}
