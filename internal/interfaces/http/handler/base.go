// Package handler implements the HTTP endpoints. Every resource shares one
// generic CRUD handler; login and docs are standalone.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// BaseHandler provides common response helpers for all handlers
type BaseHandler struct {
	logger *zap.Logger
}

// NewBaseHandler creates a new base handler
func NewBaseHandler(logger *zap.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// OK sends a 200 response with the given body
func (h *BaseHandler) OK(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}

// BadRequest sends a 400 response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(message))
}

// Unauthorized sends a 401 response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
}

// NotFound sends a 404 response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(message))
}

// InternalError sends a 500 response with a generic message. The cause is
// logged, never written to the client.
func (h *BaseHandler) InternalError(c *gin.Context, message string, err error) {
	h.logger.Error("store operation failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(message))
}

// HandleStoreError classifies a store failure: a missing record becomes 404,
// anything else becomes 500
func (h *BaseHandler) HandleStoreError(c *gin.Context, err error, notFoundMsg, failureMsg string) {
	if errors.Is(err, shared.ErrNotFound) {
		h.NotFound(c, notFoundMsg)
		return
	}
	h.InternalError(c, failureMsg, err)
}
