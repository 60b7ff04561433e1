package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janime/gojanime/internal/errors"
	"github.com/janime/gojanime/internal/models"
	"github.com/janime/gojanime/internal/resolver"
	"github.com/janime/gojanime/internal/services"
	"github.com/janime/gojanime/pkg/logger"
)

type fakeTMDB struct {
	meta models.MediaMeta
	err  error
}

func (f *fakeTMDB) GetMediaInfo(imdbID string, isMovie bool) (models.MediaMeta, error) {
	return f.meta, f.err
}

type fakeAniwatch struct {
	episode models.AniwatchEpisode
	ok      bool
	calls   int
}

func (f *fakeAniwatch) MatchEpisode(query string, episodeNumber int, airDate string) (models.AniwatchEpisode, bool, error) {
	f.calls++
	return f.episode, f.ok, nil
}

type fakeExtractor struct {
	url string
	ok  bool
}

func (f *fakeExtractor) SelectSource(episodeID string) (string, bool, error) {
	return f.url, f.ok, nil
}

func setupTestRouter(tmdb *fakeTMDB, aniwatch *fakeAniwatch, extractor *fakeExtractor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	log := logger.New()
	container := &services.Container{
		TMDB:      tmdb,
		Aniwatch:  aniwatch,
		Extractor: extractor,
		Logger:    log,
	}

	handler := New(resolver.New(container), log)
	handler.RegisterRoutes(r)

	return r
}

func defaultTestRouter() *gin.Engine {
	return setupTestRouter(
		&fakeTMDB{meta: models.MediaMeta{Title: "Naruto", ReleaseDate: "2002-10-03"}},
		&fakeAniwatch{episode: models.AniwatchEpisode{Number: 1, EpisodeID: "naruto-677?ep=1"}, ok: true},
		&fakeExtractor{url: "https://cdn.test/master.m3u8", ok: true},
	)
}

func TestManifestEndpoint(t *testing.T) {
	router := defaultTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/manifest.json", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var manifest models.Manifest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &manifest))
	assert.Equal(t, "org.janime", manifest.ID)
	assert.Equal(t, []string{"stream"}, manifest.Resources)
	assert.Equal(t, []string{"movie", "series"}, manifest.Types)
	assert.Empty(t, manifest.Catalogs)
}

func TestStreamEndpointMovie(t *testing.T) {
	router := defaultTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/stream/movie/tt0409591.json", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.StreamResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Streams, 1)
	assert.Equal(t, "https://cdn.test/master.m3u8", resp.Streams[0].URL)
	assert.Equal(t, "🎞️ Aniwatch - Auto", resp.Streams[0].Title)
}

func TestStreamEndpointSeries(t *testing.T) {
	router := defaultTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/stream/series/tt0409591:2:5.json", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStreamEndpointInvalidID(t *testing.T) {
	aniwatch := &fakeAniwatch{}
	router := setupTestRouter(&fakeTMDB{}, aniwatch, &fakeExtractor{})

	for _, id := range []string{"abc123", "tt123:1", "tt123:a:b"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/stream/series/"+id+".json", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "id %q", id)
	}

	// Nothing upstream is contacted for malformed IDs.
	assert.Zero(t, aniwatch.calls)
}

func TestStreamEndpointNoMatch(t *testing.T) {
	router := setupTestRouter(
		&fakeTMDB{meta: models.MediaMeta{Title: "Naruto", ReleaseDate: "2002-10-03"}},
		&fakeAniwatch{ok: false},
		&fakeExtractor{},
	)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/stream/movie/tt0409591.json", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no streaming URL found")
}

func TestStreamEndpointMetadataFailure(t *testing.T) {
	router := setupTestRouter(
		&fakeTMDB{err: errors.NewMetadataNotFoundError("tt0000000")},
		&fakeAniwatch{},
		&fakeExtractor{},
	)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/stream/movie/tt0000000.json", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestParseMediaRequest(t *testing.T) {
	req, err := parseMediaRequest("movie", "tt14331144")
	require.NoError(t, err)
	assert.True(t, req.IsMovie)
	assert.Equal(t, "tt14331144", req.ExternalID)
	assert.Equal(t, 1, req.Episode)

	req, err = parseMediaRequest("series", "tt0409591:2:5")
	require.NoError(t, err)
	assert.False(t, req.IsMovie)
	assert.Equal(t, "tt0409591", req.ExternalID)
	assert.Equal(t, 2, req.Season)
	assert.Equal(t, 5, req.Episode)

	_, err = parseMediaRequest("channel", "tt0409591")
	assert.Error(t, err)
}
