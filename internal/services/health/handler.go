package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"runwear/internal/shared/server/respond"
	"runwear/internal/shared/telemetry"
)

// Handler exposes the health endpoint.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the health route to the API group.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/health", h.getHealth)
}

func (h *Handler) getHealth(c *gin.Context) {
	status := h.Svc.Check(c.Request.Context())
	if !status.OK {
		telemetry.Warn("health.degraded", map[string]any{"database": status.Database})
		respond.JSON(c, http.StatusServiceUnavailable, status)
		return
	}
	respond.OK(c, status)
}
