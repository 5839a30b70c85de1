package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/MathCore/backend/internal/domain/formulas"
	"github.com/GriffinCanCode/MathCore/backend/internal/domain/workspace"
	"github.com/GriffinCanCode/MathCore/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/MathCore/backend/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/MathCore/backend/internal/service"
	"github.com/GriffinCanCode/MathCore/backend/internal/shared/types"
	"github.com/GriffinCanCode/MathCore/backend/internal/shared/utils"
)

// Version is reported by the root endpoint
const Version = "0.1.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	registry  *service.Registry
	catalog   *formulas.Registry
	workspace *workspace.Store
	metrics   *monitoring.Metrics
	logger    *zap.Logger
}

// NewHandlers creates a new handler set. metrics and logger may be nil.
func NewHandlers(
	registry *service.Registry,
	catalog *formulas.Registry,
	store *workspace.Store,
	metrics *monitoring.Metrics,
	logger *zap.Logger,
) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		registry:  registry,
		catalog:   catalog,
		workspace: store,
		metrics:   metrics,
		logger:    logger,
	}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Math Core Service (Go)",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	state := h.workspace.Snapshot()
	body := gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
		"workspace": gin.H{
			"history":        len(state.History),
			"favorites":      len(state.Favorites),
			"saved_formulas": len(state.SavedFormulas),
		},
	}
	if h.metrics != nil {
		body["metrics"] = h.metrics.Snapshot()
	}
	c.JSON(http.StatusOK, body)
}

// MetricsJSON returns the metrics snapshot as JSON
func (h *Handlers) MetricsJSON(c *gin.Context) {
	if h.metrics == nil {
		fail(c, http.StatusNotFound, errors.New("metrics disabled"))
		return
	}
	c.JSON(http.StatusOK, h.metrics.Snapshot())
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if raw := c.Query("category"); raw != "" {
		cat := types.Category(raw)
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// DiscoverServices finds services relevant to an intent
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req struct {
		Intent string `json:"intent" binding:"required"`
		Limit  int    `json:"limit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if req.Limit <= 0 {
		req.Limit = 5
	}

	c.JSON(http.StatusOK, gin.H{"services": h.registry.Discover(req.Intent, req.Limit)})
}

// ExecuteService executes a service tool. Tool failures are returned with
// status 200 in the result body.
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	if err := utils.ValidateToolID(req.ToolID, "tool_id", true); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, nil)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrServiceNotFound) || errors.Is(err, service.ErrInvalidToolID) {
			status = http.StatusNotFound
		}
		fail(c, status, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// execute runs a tool on behalf of a typed endpoint. Failed results map to
// 422 with the same body shape.
func (h *Handlers) execute(c *gin.Context, toolID string, params map[string]interface{}) {
	result, err := h.registry.Execute(c.Request.Context(), toolID, params, nil)
	if err != nil {
		h.logger.Error("Tool execution failed",
			append(tracing.Fields(c.Request.Context()), zap.String("tool", toolID), zap.Error(err))...,
		)
		fail(c, http.StatusInternalServerError, err)
		return
	}
	if !result.Success {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
