package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/janime/gojanime/internal/errors"
	"github.com/janime/gojanime/internal/models"
	"github.com/janime/gojanime/pkg/httputil"
	"github.com/janime/gojanime/pkg/logger"
)

// Aniwatch matches free-text titles against the Aniwatch catalog. Matching is
// three-tiered: exact name match, air-date match, then token-overlap ranking.
type Aniwatch struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

func NewAniwatch(baseURL string, log logger.Logger) *Aniwatch {
	return &Aniwatch{
		baseURL:    baseURL,
		httpClient: httputil.NewDefaultHTTPClient(),
		logger:     log,
	}
}

func (a *Aniwatch) MatchEpisode(query string, episodeNumber int, airDate string) (models.AniwatchEpisode, bool, error) {
	suggestions, err := a.fetchSuggestions(query)
	if err != nil {
		return models.AniwatchEpisode{}, false, err
	}

	suggestion, ok := pickSuggestion(suggestions, query, formatAirDate(airDate))
	if !ok {
		a.logger.Infof("[Aniwatch] no suggestion matched query %q", query)
		return models.AniwatchEpisode{}, false, nil
	}

	a.logger.Infof("[Aniwatch] matched %q to %q (id %s)", query, suggestion.Name, suggestion.ID)

	episodes, err := a.fetchEpisodes(suggestion.ID)
	if err != nil {
		return models.AniwatchEpisode{}, false, err
	}

	for _, episode := range episodes {
		if episode.Number == episodeNumber {
			return episode, true, nil
		}
	}

	a.logger.Infof("[Aniwatch] %q has no episode %d", suggestion.Name, episodeNumber)
	return models.AniwatchEpisode{}, false, nil
}

func (a *Aniwatch) fetchSuggestions(query string) ([]models.AniwatchSuggestion, error) {
	endpoint := fmt.Sprintf("%s/anime/search/suggest?q=%s", a.baseURL, url.QueryEscape(query))

	resp, err := a.httpClient.Get(endpoint)
	if err != nil {
		return nil, errors.NewUpstreamError("aniwatch", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewUpstreamError("aniwatch", fmt.Errorf("status %d", resp.StatusCode))
	}

	var suggestResp models.AniwatchSuggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&suggestResp); err != nil {
		return nil, errors.NewUpstreamError("aniwatch", err)
	}

	return suggestResp.Suggestions, nil
}

func (a *Aniwatch) fetchEpisodes(id string) ([]models.AniwatchEpisode, error) {
	endpoint := fmt.Sprintf("%s/anime/episodes/%s", a.baseURL, url.PathEscape(id))

	resp, err := a.httpClient.Get(endpoint)
	if err != nil {
		return nil, errors.NewUpstreamError("aniwatch", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewUpstreamError("aniwatch", fmt.Errorf("status %d", resp.StatusCode))
	}

	var episodesResp models.AniwatchEpisodesResponse
	if err := json.NewDecoder(resp.Body).Decode(&episodesResp); err != nil {
		return nil, errors.NewUpstreamError("aniwatch", err)
	}

	return episodesResp.Episodes, nil
}
