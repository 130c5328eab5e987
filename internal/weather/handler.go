package weather

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"runwear/internal/shared/server/respond"
	"runwear/internal/shared/validation"
)

// Handler exposes the forecast endpoint.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches forecast routes to the API group.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/forecast", h.getForecast)
}

type forecastQuery struct {
	Zip string   `form:"zip" validate:"omitempty,len=5,number"`
	Lat *float64 `form:"lat" validate:"omitempty,min=-90,max=90"`
	Lon *float64 `form:"lon" validate:"omitempty,min=-180,max=180"`
}

func (h *Handler) getForecast(c *gin.Context) {
	var q forecastQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "lat and lon must be numbers", nil)
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
	if q.Zip == "" && (q.Lat == nil || q.Lon == nil) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "zip or lat and lon are required", nil)
		return
	}

	result, err := h.Svc.Forecast(c.Request.Context(), Query{Zip: q.Zip, Lat: q.Lat, Lon: q.Lon})
	if err != nil {
		switch {
		case errors.Is(err, ErrLocationNotFound):
			respond.Error(c, http.StatusNotFound, "location_not_found", "no location found for that query", nil)
		case errors.Is(err, ErrUpstreamUnavailable):
			respond.Error(c, http.StatusServiceUnavailable, "upstream_unavailable", "weather service temporarily unavailable", nil)
		case errors.Is(err, ErrNoForecast):
			respond.Error(c, http.StatusBadGateway, "no_forecast", "no forecast periods available", nil)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusGatewayTimeout, "timeout", "weather lookup timed out", nil)
		default:
			respond.Error(c, http.StatusBadGateway, "upstream_error", "weather lookup failed", nil)
		}
		return
	}

	c.Set("bucket", result.Recommendation.Bucket)
	c.Set("condition", string(result.Recommendation.Condition))
	respond.OK(c, result)
}
