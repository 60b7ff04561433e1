// Package handlers implements HTTP request handlers for the Stremio addon API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/janime/gojanime/internal/constants"
	"github.com/janime/gojanime/internal/resolver"
	"github.com/janime/gojanime/pkg/logger"
)

// Handler handles HTTP requests for the Stremio addon.
type Handler struct {
	resolver *resolver.Resolver
	logger   logger.Logger
}

// New creates a new Handler around the given resolver.
func New(r *resolver.Resolver, log logger.Logger) *Handler {
	return &Handler{
		resolver: r,
		logger:   log,
	}
}

// RegisterRoutes registers all HTTP routes for the Stremio addon.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.handleHome)
	r.GET("/manifest.json", h.handleManifest)

	// Stream route - handle both with and without .json in the handler
	r.GET("/stream/:type/:id", h.handleStreamWrapper)
}

func (h *Handler) handleHome(c *gin.Context) {
	c.String(http.StatusOK, "%s Stremio addon. Install via /manifest.json.", constants.AddonName)
}

func (h *Handler) handleStreamWrapper(c *gin.Context) {
	// Strip .json extension from ID if present
	stripJSONExtension(c, "id")
	h.handleStream(c)
}
