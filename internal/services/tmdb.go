package services

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/janime/gojanime/internal/constants"
	"github.com/janime/gojanime/internal/errors"
	"github.com/janime/gojanime/internal/models"
	"github.com/janime/gojanime/pkg/httputil"
	"github.com/janime/gojanime/pkg/logger"
)

// TMDB resolves external IDs into canonical titles and dates. Exactly one
// outbound call per invocation, no caching.
type TMDB struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

func NewTMDB(apiKey string, log logger.Logger) *TMDB {
	return &TMDB{
		apiKey:     apiKey,
		baseURL:    constants.TMDBBaseURL,
		httpClient: httputil.NewDefaultHTTPClient(),
		logger:     log,
	}
}

// SetBaseURL overrides the TMDB endpoint, used to point the client at a
// stub server in tests.
func (t *TMDB) SetBaseURL(baseURL string) {
	t.baseURL = baseURL
}

func (t *TMDB) GetMediaInfo(imdbID string, isMovie bool) (models.MediaMeta, error) {
	url := fmt.Sprintf("%s/find/%s?api_key=%s&external_source=imdb_id", t.baseURL, imdbID, t.apiKey)

	t.logger.Debugf("[TMDB] fetching info for %s", imdbID)

	resp, err := t.httpClient.Get(url)
	if err != nil {
		return models.MediaMeta{}, errors.NewUpstreamError("tmdb", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.MediaMeta{}, errors.NewUpstreamError("tmdb", fmt.Errorf("status %d", resp.StatusCode))
	}

	var findResp models.TMDBFindResponse
	if err := json.NewDecoder(resp.Body).Decode(&findResp); err != nil {
		return models.MediaMeta{}, errors.NewUpstreamError("tmdb", err)
	}

	if isMovie {
		if len(findResp.MovieResults) == 0 {
			return models.MediaMeta{}, errors.NewMetadataNotFoundError(imdbID)
		}
		movie := findResp.MovieResults[0]
		return models.MediaMeta{Title: movie.Title, ReleaseDate: movie.ReleaseDate}, nil
	}

	if len(findResp.TVResults) == 0 {
		return models.MediaMeta{}, errors.NewMetadataNotFoundError(imdbID)
	}
	tv := findResp.TVResults[0]
	return models.MediaMeta{Title: tv.Name, ReleaseDate: tv.FirstAirDate}, nil
}
