package services

import (
	"fmt"

	"github.com/janime/gojanime/internal/constants"
	"github.com/janime/gojanime/pkg/logger"
)

// Extractor selects one playable URL for an episode from the configured
// extraction service. A deployment speaks exactly one response shape, so
// exactly one implementation is constructed per process.
type Extractor interface {
	// SelectSource returns the chosen stream URL. ok is false when no
	// candidate meets the selection criteria; err reports upstream failures.
	SelectSource(episodeID string) (string, bool, error)
}

// NewExtractor constructs the extractor for the configured response shape.
func NewExtractor(kind, baseURL string, log logger.Logger) (Extractor, error) {
	switch kind {
	case constants.ExtractorHLS:
		return NewHLSExtractor(baseURL, log), nil
	case constants.ExtractorMegaCloud:
		return NewMegaCloudExtractor(baseURL, log), nil
	default:
		return nil, fmt.Errorf("unknown extractor kind %q", kind)
	}
}
