package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type IHealthHandler interface {
	Healthz(ctx *gin.Context)
}

// HealthHandler reports liveness and which optional backends are wired.
type HealthHandler struct {
	components map[string]bool
}

func NewHealthHandler(components map[string]bool) IHealthHandler {
	return &HealthHandler{components: components}
}

// Healthz returns OK for health checks
func (h *HealthHandler) Healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "components": h.components})
}
