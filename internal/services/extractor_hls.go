package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/janime/gojanime/internal/constants"
	"github.com/janime/gojanime/internal/errors"
	"github.com/janime/gojanime/internal/models"
	"github.com/janime/gojanime/pkg/httputil"
	"github.com/janime/gojanime/pkg/logger"
)

// HLSExtractor speaks the HLS-list response shape: the first source typed as
// a playlist stream wins.
type HLSExtractor struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

func NewHLSExtractor(baseURL string, log logger.Logger) *HLSExtractor {
	return &HLSExtractor{
		baseURL:    baseURL,
		httpClient: httputil.NewDefaultHTTPClient(),
		logger:     log,
	}
}

func (e *HLSExtractor) SelectSource(episodeID string) (string, bool, error) {
	endpoint := fmt.Sprintf("%s/anime/episode-srcs?id=%s", e.baseURL, url.QueryEscape(episodeID))

	resp, err := e.httpClient.Get(endpoint)
	if err != nil {
		return "", false, errors.NewUpstreamError("extractor", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false, errors.NewUpstreamError("extractor", fmt.Errorf("status %d", resp.StatusCode))
	}

	var sourcesResp models.HLSSourcesResponse
	if err := json.NewDecoder(resp.Body).Decode(&sourcesResp); err != nil {
		return "", false, errors.NewUpstreamError("extractor", err)
	}

	for _, source := range sourcesResp.Sources {
		if source.Type == constants.HLSStreamType && source.URL != "" {
			return source.URL, true, nil
		}
	}

	e.logger.Infof("[HLSExtractor] no hls source for episode %s", episodeID)
	return "", false, nil
}
