package main

import (
	"github.com/janime/gojanime/internal/config"
	"github.com/janime/gojanime/internal/services"
	"github.com/janime/gojanime/pkg/logger"
)

// buildServices wires the upstream service clients into a container. The
// extractor kind decides which extraction response shape this deployment
// speaks.
func buildServices(cfg *config.Config, log logger.Logger) (*services.Container, error) {
	extractor, err := services.NewExtractor(cfg.Extractor, cfg.ExtractorAPIURL, log)
	if err != nil {
		return nil, err
	}

	return &services.Container{
		TMDB:      services.NewTMDB(cfg.TMDBAPIKey, log),
		Aniwatch:  services.NewAniwatch(cfg.AniwatchAPIURL, log),
		Extractor: extractor,
		Logger:    log,
	}, nil
}
