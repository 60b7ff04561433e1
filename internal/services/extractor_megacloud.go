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

// MegaCloudExtractor speaks the decryption/subtitle response shape. A
// candidate qualifies when it carries a decryption result from the trusted
// server with a subbed track, or an English captions file. The decryption
// link is preferred over the captions file when both are present.
type MegaCloudExtractor struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

func NewMegaCloudExtractor(baseURL string, log logger.Logger) *MegaCloudExtractor {
	return &MegaCloudExtractor{
		baseURL:    baseURL,
		httpClient: httputil.NewDefaultHTTPClient(),
		logger:     log,
	}
}

func (e *MegaCloudExtractor) SelectSource(episodeID string) (string, bool, error) {
	endpoint := fmt.Sprintf("%s/api/stream?id=%s", e.baseURL, url.QueryEscape(episodeID))

	resp, err := e.httpClient.Get(endpoint)
	if err != nil {
		return "", false, errors.NewUpstreamError("extractor", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false, errors.NewUpstreamError("extractor", fmt.Errorf("status %d", resp.StatusCode))
	}

	var streamResp models.MegaCloudResponse
	if err := json.NewDecoder(resp.Body).Decode(&streamResp); err != nil {
		return "", false, errors.NewUpstreamError("extractor", err)
	}

	for _, candidate := range streamResp.Results.StreamingInfo {
		if link, ok := selectCandidateLink(candidate); ok {
			return link, true, nil
		}
	}

	e.logger.Infof("[MegaCloudExtractor] no source from %s with type %s for episode %s",
		constants.TrustedServer, constants.SubbedTrackType, episodeID)
	return "", false, nil
}

// selectCandidateLink probes a single candidate. Missing fields disqualify
// the candidate instead of failing the request.
func selectCandidateLink(candidate models.MegaCloudCandidate) (string, bool) {
	if link, ok := decryptionLink(candidate); ok {
		return link, true
	}
	return captionsFile(candidate)
}

func decryptionLink(candidate models.MegaCloudCandidate) (string, bool) {
	if candidate.Value == nil || candidate.Value.DecryptionResult == nil {
		return "", false
	}

	result := candidate.Value.DecryptionResult
	if result.Server != constants.TrustedServer || result.Type != constants.SubbedTrackType || result.Link == "" {
		return "", false
	}
	return result.Link, true
}

func captionsFile(candidate models.MegaCloudCandidate) (string, bool) {
	if candidate.SubtitleResult == nil {
		return "", false
	}

	for _, subtitle := range candidate.SubtitleResult.Subtitles {
		if subtitle.Kind == constants.CaptionsKind && subtitle.Label == constants.CaptionsLabel && subtitle.File != "" {
			return subtitle.File, true
		}
	}
	return "", false
}
