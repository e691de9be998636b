package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskwell/backend/internal/infrastructure/monitor"
	"github.com/taskwell/backend/pkg/httpcontext"
)

type HealthHandler struct {
	baseHandler
	monitor *monitor.Monitor
}

func NewHealthHandler(mon *monitor.Monitor, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     mon,
	}
}

// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	status := h.monitor.GetStatus()
	payload := map[string]interface{}{
		"timestamp": time.Now().UTC(),
		"uptime":    status.Uptime.String(),
		"store": map[string]interface{}{
			"tasks":      status.Tasks,
			"pending":    status.Pending,
			"done":       status.Done,
			"last_check": status.LastCheck,
		},
	}
	h.respondSuccess(ctx, http.StatusOK, payload)
}
