package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wardfs/wardfs/internal/api/middleware"
	"github.com/wardfs/wardfs/internal/infrastructure/logging"
	"github.com/wardfs/wardfs/internal/infrastructure/monitoring"
	"github.com/wardfs/wardfs/internal/sandbox"
	"github.com/wardfs/wardfs/internal/service"
	"github.com/wardfs/wardfs/internal/types"
)

// Handlers holds HTTP handler dependencies
type Handlers struct {
	registry    *service.Registry
	sandbox     *sandbox.Sandbox
	metrics     *monitoring.Metrics
	logger      *logging.Logger
	toolTimeout time.Duration
}

// NewHandlers creates HTTP handlers
func NewHandlers(registry *service.Registry, sb *sandbox.Sandbox, metrics *monitoring.Metrics, logger *logging.Logger, toolTimeout time.Duration) *Handlers {
	return &Handlers{
		registry:    registry,
		sandbox:     sb,
		metrics:     metrics,
		logger:      logger.Named("http"),
		toolTimeout: toolTimeout,
	}
}

// Root returns server identity and the configured roots
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "wardfs",
		"version": "1.0.0",
		"roots":   h.sandbox.Roots(),
	})
}

// Health returns liveness plus registry statistics
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"registry": h.registry.Stats(),
	})
}

// ListServices returns registered services, optionally filtered by category
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if raw := c.Query("category"); raw != "" {
		cat := types.Category(raw)
		category = &cat
	}

	services := h.registry.List(category)
	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"count":    len(services),
	})
}

// ExecuteService runs a tool by ID
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appCtx := requestContext(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.toolTimeout)
	defer cancel()

	timer := monitoring.NewTimer(h.metrics, serviceOf(req.ToolID), req.ToolID)
	result, err := h.registry.Execute(ctx, req.ToolID, req.Params, appCtx)
	if err != nil {
		timer.Stop("error")
		h.logger.Warn("tool execution failed",
			zap.String("tool", req.ToolID),
			zap.Error(err),
		)
		status := http.StatusNotFound
		if errors.Is(err, service.ErrInvalidToolID) {
			status = http.StatusBadRequest
		}
		c.JSON(status, result)
		return
	}

	if result.Success {
		timer.Stop("success")
	} else {
		timer.Stop("failure")
		h.metrics.RecordToolError(serviceOf(req.ToolID), req.ToolID)
	}

	c.JSON(http.StatusOK, result)
}

// requestContext builds the tool execution context from the request.
func requestContext(c *gin.Context) *types.Context {
	appCtx := &types.Context{}
	if rid := c.GetString(middleware.RequestIDKey); rid != "" {
		appCtx.RequestID = &rid
	}
	ip := c.ClientIP()
	if ip != "" {
		appCtx.ClientID = &ip
	}
	return appCtx
}

func serviceOf(toolID string) string {
	for i := 0; i < len(toolID); i++ {
		if toolID[i] == '.' {
			return toolID[:i]
		}
	}
	return toolID
}
