// Package services implements the clients for the three upstream APIs the
// resolution pipeline depends on.
package services

import (
	"github.com/janime/gojanime/internal/models"
	"github.com/janime/gojanime/pkg/logger"
)

// Container holds all application services for dependency injection.
type Container struct {
	TMDB      TMDBService
	Aniwatch  AniwatchService
	Extractor Extractor
	Logger    logger.Logger
}

// TMDBService defines the interface for metadata lookups.
type TMDBService interface {
	// GetMediaInfo resolves an IMDB ID into the canonical title and release
	// date. An empty result list from TMDB is a hard METADATA_NOT_FOUND error.
	GetMediaInfo(imdbID string, isMovie bool) (models.MediaMeta, error)
}

// AniwatchService defines the interface for catalog matching.
type AniwatchService interface {
	// MatchEpisode finds the catalog entry best matching query and returns
	// its episode with the given number. ok is false when no suggestion or no
	// episode matched; err reports upstream failures.
	MatchEpisode(query string, episodeNumber int, airDate string) (models.AniwatchEpisode, bool, error)
}
