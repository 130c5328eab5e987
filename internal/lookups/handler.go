package lookups

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"runwear/internal/shared/server/respond"
	"runwear/internal/shared/validation"
)

// Handler exposes lookup history.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches history routes to the API group.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/lookups", h.listLookups)
}

type listQuery struct {
	Limit int `form:"limit,default=20" validate:"min=1,max=100"`
}

type listResponse struct {
	Lookups []Lookup `json:"lookups"`
}

func (h *Handler) listLookups(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "limit must be an integer", nil)
		return
	}
	if err := validation.Struct(q); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			respond.Error(c, http.StatusBadRequest, "validation_error", verrs.Error(), verrs)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	items, err := h.Svc.ListRecent(c.Request.Context(), q.Limit)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusRequestTimeout, "timeout", "request canceled", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list lookups", nil)
		}
		return
	}
	if items == nil {
		items = []Lookup{}
	}
	respond.OK(c, listResponse{Lookups: items})
}
