package pages

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"runwear/internal/clothing"
)

// LoadTemplates parses the page templates from fsys.
func LoadTemplates(fsys fs.FS) (*template.Template, error) {
	tmpl, err := template.ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// Handler renders the HTML pages.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches page routes. The engine must have templates set.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.index)
	r.GET("/about", h.about)
}

func (h *Handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, "runwear.html", gin.H{
		"Title": "runwear",
	})
}

func (h *Handler) about(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{
		"Title":          "About runwear",
		"WindyThreshold": clothing.WindyThresholdMph,
	})
}
