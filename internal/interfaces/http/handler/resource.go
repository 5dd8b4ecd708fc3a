package handler

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ims/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// ResourceStore is the persistence surface a CRUD handler needs
type ResourceStore[M any] interface {
	FindAll(ctx context.Context) ([]M, error)
	FindByID(ctx context.Context, id uint) (*M, error)
	Create(ctx context.Context, record *M) error
	Save(ctx context.Context, record *M) error
	DeleteByID(ctx context.Context, id uint) (*M, error)
}

// RequestBody converts a validated request payload into a fresh record.
// Payloads carry no id field, so a client-supplied id can never leak into
// the store.
type RequestBody[M any] interface {
	ToModel() M
}

// ResourceDescriptor names a resource on the wire
type ResourceDescriptor[M any] struct {
	// Path is the collection route, e.g. "/customers"
	Path string
	// Singular is the JSON key wrapping the record in update responses
	Singular string
	// Display is the capitalized name used in messages
	Display string
	// SetID stamps the route id onto a record before an update
	SetID func(record *M, id uint)
}

// CRUDHandler serves the uniform List/Create/Update/Delete contract for one
// resource. All per-resource variation lives in the descriptor and the
// request payload type.
type CRUDHandler[M any, R RequestBody[M]] struct {
	BaseHandler
	store ResourceStore[M]
	desc  ResourceDescriptor[M]
}

// NewCRUDHandler creates a CRUD handler for one resource
func NewCRUDHandler[M any, R RequestBody[M]](store ResourceStore[M], desc ResourceDescriptor[M], logger *zap.Logger) *CRUDHandler[M, R] {
	return &CRUDHandler[M, R]{
		BaseHandler: NewBaseHandler(logger),
		store:       store,
		desc:        desc,
	}
}

// RegisterRoutes registers the resource's routes
func (h *CRUDHandler[M, R]) RegisterRoutes(r gin.IRouter) {
	r.GET(h.desc.Path, h.List)
	r.POST(h.desc.Path, h.Create)
	r.PUT(h.desc.Path+"/:id", h.Update)
	r.DELETE(h.desc.Path+"/:id", h.Delete)
}

// List returns every record as a bare array
func (h *CRUDHandler[M, R]) List(c *gin.Context) {
	records, err := h.store.FindAll(c.Request.Context())
	if err != nil {
		h.InternalError(c, "An error occurred while fetching "+h.plural(), err)
		return
	}
	if records == nil {
		records = []M{}
	}
	h.OK(c, records)
}

// Create validates the payload and inserts a new record
func (h *CRUDHandler[M, R]) Create(c *gin.Context) {
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.BindingErrorMessage(err))
		return
	}

	record := req.ToModel()
	if err := h.store.Create(c.Request.Context(), &record); err != nil {
		h.InternalError(c, "An error occurred while creating "+h.desc.Singular, err)
		return
	}
	h.OK(c, record)
}

// Update replaces the full field set of an existing record
func (h *CRUDHandler[M, R]) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.BindingErrorMessage(err))
		return
	}

	if _, err := h.store.FindByID(c.Request.Context(), id); err != nil {
		h.HandleStoreError(c, err, h.desc.Display+" not found", "An error occurred while updating "+h.desc.Singular)
		return
	}

	record := req.ToModel()
	h.desc.SetID(&record, id)
	if err := h.store.Save(c.Request.Context(), &record); err != nil {
		h.InternalError(c, "An error occurred while updating "+h.desc.Singular, err)
		return
	}

	h.OK(c, gin.H{
		"message":       h.desc.Display + " updated successfully",
		h.desc.Singular: record,
	})
}

// Delete removes a record and returns its prior state
func (h *CRUDHandler[M, R]) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	record, err := h.store.DeleteByID(c.Request.Context(), id)
	if err != nil {
		h.HandleStoreError(c, err, h.desc.Display+" not found", "An error occurred while deleting the "+h.desc.Singular)
		return
	}
	h.OK(c, record)
}

func (h *CRUDHandler[M, R]) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.BadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

func (h *CRUDHandler[M, R]) plural() string {
	return strings.TrimPrefix(h.desc.Path, "/")
}
