package handlers

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/janime/gojanime/internal/constants"
	"github.com/janime/gojanime/internal/errors"
	"github.com/janime/gojanime/internal/models"
	"github.com/janime/gojanime/internal/resolver"
)

var (
	movieIDRegex   = regexp.MustCompile(`^tt\d+$`)
	episodeIDRegex = regexp.MustCompile(`^(tt\d+):(\d+):(\d+)$`)
)

func (h *Handler) handleStream(c *gin.Context) {
	mediaType := c.Param("type")
	id := c.Param("id")

	req, err := parseMediaRequest(mediaType, id)
	if err != nil {
		h.logger.Warnf("[StreamHandler] rejected request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"err": "invalid ID format"})
		return
	}

	resolution := h.resolver.Resolve(req)

	switch resolution.Status {
	case resolver.StatusResolved:
		c.JSON(http.StatusOK, models.StreamResponse{
			Streams: []models.Stream{{URL: resolution.URL, Title: constants.StreamTitle}},
		})
	case resolver.StatusNoMatch:
		c.JSON(http.StatusNotFound, gin.H{"err": "no streaming URL found"})
	default:
		h.logger.Errorf("[StreamHandler] resolution failed for %s: %v", id, resolution.Err)
		c.JSON(http.StatusInternalServerError, gin.H{"err": "stream resolution failed"})
	}
}

// parseMediaRequest builds a MediaRequest from the route parameters. Series
// IDs are composite "externalId:season:episode" strings.
func parseMediaRequest(mediaType, id string) (models.MediaRequest, error) {
	switch mediaType {
	case "movie":
		if movieIDRegex.MatchString(id) {
			return models.MediaRequest{IsMovie: true, ExternalID: id, Episode: 1}, nil
		}
	case "series":
		if matches := episodeIDRegex.FindStringSubmatch(id); len(matches) == 4 {
			season, _ := strconv.Atoi(matches[2])
			episode, _ := strconv.Atoi(matches[3])
			return models.MediaRequest{ExternalID: matches[1], Season: season, Episode: episode}, nil
		}
	}

	return models.MediaRequest{}, errors.NewInvalidIDError(id)
}
