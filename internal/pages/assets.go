package pages

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"runwear/internal/shared/storage/object"
	"runwear/internal/shared/telemetry"
)

// AssetHandler serves /static/* from an asset store, falling back to a
// second store (normally the embedded tree) for keys the first lacks.
type AssetHandler struct {
	Store    object.AssetStore
	Fallback object.AssetStore
}

// NewAssetHandler constructs an AssetHandler. fallback may be nil.
func NewAssetHandler(store, fallback object.AssetStore) *AssetHandler {
	return &AssetHandler{Store: store, Fallback: fallback}
}

// RegisterRoutes attaches the static route.
func (h *AssetHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/static/*filepath", h.serve)
	r.HEAD("/static/*filepath", h.serve)
}

func (h *AssetHandler) serve(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("filepath"), "/")

	obj, err := h.open(c, key)
	if err != nil {
		switch {
		case errors.Is(err, object.ErrNotFound), errors.Is(err, object.ErrInvalidKey):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			telemetry.Error("asset.open_failed", map[string]any{
				"key":        key,
				"request_id": telemetry.RequestID(c.Request.Context()),
				"error":      err.Error(),
			})
			c.AbortWithStatus(http.StatusBadGateway)
		}
		return
	}
	defer obj.Body.Close()

	header := c.Writer.Header()
	if obj.ContentType != "" {
		header.Set("Content-Type", obj.ContentType)
	}
	if obj.Size > 0 {
		header.Set("Content-Length", strconv.FormatInt(obj.Size, 10))
	}
	header.Set("Cache-Control", "public, max-age=3600")
	c.Status(http.StatusOK)
	if c.Request.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(c.Writer, obj.Body); err != nil {
		telemetry.Warn("asset.copy_failed", map[string]any{"key": key, "error": err.Error()})
	}
}

func (h *AssetHandler) open(c *gin.Context, key string) (object.Object, error) {
	obj, err := h.Store.Open(c.Request.Context(), key)
	if err == nil || h.Fallback == nil || !errors.Is(err, object.ErrNotFound) {
		return obj, err
	}
	return h.Fallback.Open(c.Request.Context(), key)
}
