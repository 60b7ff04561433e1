package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/janime/gojanime/internal/constants"
	"github.com/janime/gojanime/internal/models"
)

func (h *Handler) handleManifest(c *gin.Context) {
	c.JSON(http.StatusOK, h.createManifest())
}

func (h *Handler) createManifest() models.Manifest {
	return models.Manifest{
		ID:          constants.AddonID,
		Version:     constants.AddonVersion,
		Name:        constants.AddonName,
		Description: constants.AddonDescription,
		Types:       []string{"movie", "series"},
		Resources:   []string{"stream"},
		Catalogs:    []models.Catalog{},
		BehaviorHints: models.BehaviorHints{
			Configurable: false,
		},
		IDPrefixes: []string{"tt"}, // Only accept IMDB IDs
	}
}
