package clothing

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"runwear/internal/shared/server/respond"
)

const (
	maxBodySize      = 64 << 10
	invalidDataTypes = "Invalid data types provided"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the recommendation endpoint.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/getClothing", h.getClothing)
}

type clothingResponse struct {
	ImageURLs []string `json:"imageUrls"`
}

func (h *Handler) getClothing(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.fail(c, err)
		return
	}

	req, err := ParseRequest(body)
	if err != nil {
		h.fail(c, err)
		return
	}

	rec := h.Svc.Recommend(c.Request.Context(), req)
	c.Set("bucket", rec.Bucket)
	c.Set("condition", string(rec.Condition))

	respond.OK(c, clothingResponse{ImageURLs: rec.ImageURLs})
}

// fail responds once per failure; respond.Message does the logging.
func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, ErrValidation) {
		_ = c.Error(err)
		respond.Message(c, http.StatusBadRequest, invalidDataTypes)
		return
	}
	respond.Message(c, http.StatusInternalServerError, err.Error())
}
