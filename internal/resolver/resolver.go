// Package resolver implements the resolution pipeline: metadata lookup,
// catalog matching and source selection, run strictly in sequence for one
// request.
package resolver

import (
	"fmt"

	"github.com/janime/gojanime/internal/models"
	"github.com/janime/gojanime/internal/services"
)

// Status is the terminal outcome of a resolution.
type Status int

const (
	// StatusResolved means a playable URL was found.
	StatusResolved Status = iota
	// StatusNoMatch means a stage found nothing. This is a valid outcome,
	// not an error.
	StatusNoMatch
	// StatusFailed means a stage failed hard (upstream unavailable or
	// metadata not found).
	StatusFailed
)

// Resolution is the pipeline's terminal output. URL is set only for
// StatusResolved, Err only for StatusFailed.
type Resolution struct {
	Status Status
	URL    string
	Err    error
}

// Resolver composes the three upstream services. It holds no per-request
// state; concurrent resolutions do not share anything mutable.
type Resolver struct {
	services *services.Container
}

func New(container *services.Container) *Resolver {
	return &Resolver{services: container}
}

// Resolve runs the pipeline for one request. Each stage consumes the previous
// stage's output; any miss or failure short-circuits. No stage is retried.
func (r *Resolver) Resolve(req models.MediaRequest) Resolution {
	meta, err := r.services.TMDB.GetMediaInfo(req.ExternalID, req.IsMovie)
	if err != nil {
		r.services.Logger.Errorf("[Resolver] metadata lookup failed for %s: %v", req.ExternalID, err)
		return Resolution{Status: StatusFailed, Err: err}
	}

	query := meta.Title
	episodeNumber := 1
	if !req.IsMovie {
		query = seriesQuery(meta.Title, req.Season)
		episodeNumber = req.Episode
	}

	r.services.Logger.Infof("[Resolver] resolving %q episode %d (%s)", query, episodeNumber, req.ExternalID)

	episode, ok, err := r.services.Aniwatch.MatchEpisode(query, episodeNumber, meta.ReleaseDate)
	if err != nil {
		r.services.Logger.Errorf("[Resolver] catalog match failed for %q: %v", query, err)
		return Resolution{Status: StatusFailed, Err: err}
	}
	if !ok {
		return Resolution{Status: StatusNoMatch}
	}

	streamURL, ok, err := r.services.Extractor.SelectSource(episode.EpisodeID)
	if err != nil {
		r.services.Logger.Errorf("[Resolver] source selection failed for %s: %v", episode.EpisodeID, err)
		return Resolution{Status: StatusFailed, Err: err}
	}
	if !ok {
		return Resolution{Status: StatusNoMatch}
	}

	return Resolution{Status: StatusResolved, URL: streamURL}
}

// seriesQuery builds the catalog query for a series title. The catalog
// indexes most shows' first season under the bare title and later seasons
// under a "Season N" suffix.
func seriesQuery(title string, season int) string {
	if season <= 1 {
		return title
	}
	return fmt.Sprintf("%s Season %d", title, season)
}
