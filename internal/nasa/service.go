// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package nasa

import (
	"context"
	"net/url"

	"github.com/tomtom215/nasa-explorer/internal/breaker"
	"github.com/tomtom215/nasa-explorer/internal/config"
	"github.com/tomtom215/nasa-explorer/internal/models"
	"github.com/tomtom215/nasa-explorer/internal/upstream"
)

// Upstream is the outbound dependency of every service.
// *upstream.Client satisfies it.
type Upstream interface {
	Get(ctx context.Context, path string, params url.Values, out any) error
}

// Upstream names used in logs, metrics and health output.
const (
	UpstreamAPOD         = "apod"
	UpstreamNEO          = "neo"
	UpstreamMarsRover    = "mars-rover"
	UpstreamEPIC         = "epic"
	UpstreamImageLibrary = "image-library"
)

// Services bundles the domain services with the clients that back them.
type Services struct {
	APOD         *APODService
	NEO          *NEOService
	MarsRover    *MarsRoverService
	EPIC         *EPICService
	ImageLibrary *ImageLibraryService

	upstreams []*upstream.Client
}

// NewServices builds one upstream client per service so that each gets an
// independent circuit breaker.
func NewServices(cfg *config.Config) *Services {
	newClient := func(name, baseURL string, keyless bool) *upstream.Client {
		return upstream.New(upstream.Config{
			Name:      name,
			BaseURL:   baseURL,
			Timeout:   cfg.NASA.Timeout,
			APIKey:    cfg.NASA.APIKey,
			Keyless:   keyless,
			RateLimit: cfg.NASA.RateLimit,
			RateBurst: cfg.NASA.RateBurst,
			Breaker: breaker.Settings{
				Name:             name,
				FailureThreshold: cfg.Breaker.FailureThreshold,
				SuccessThreshold: cfg.Breaker.SuccessThreshold,
				Cooldown:         cfg.Breaker.Cooldown,
			},
		})
	}

	apod := newClient(UpstreamAPOD, cfg.NASA.BaseURL, false)
	neo := newClient(UpstreamNEO, cfg.NASA.BaseURL, false)
	mars := newClient(UpstreamMarsRover, cfg.NASA.BaseURL, false)
	epic := newClient(UpstreamEPIC, cfg.NASA.BaseURL, false)
	library := newClient(UpstreamImageLibrary, cfg.NASA.ImageLibraryURL, true)

	return &Services{
		APOD:         NewAPODService(apod),
		NEO:          NewNEOService(neo),
		MarsRover:    NewMarsRoverService(mars),
		EPIC:         NewEPICService(epic),
		ImageLibrary: NewImageLibraryService(library),
		upstreams:    []*upstream.Client{apod, neo, mars, epic, library},
	}
}

// Upstreams returns the clients in a stable order for health reporting.
func (s *Services) Upstreams() []*upstream.Client {
	return s.upstreams
}

// wrap returns typed errors unchanged and turns anything else into an
// InternalError with the service's fixed message.
func wrap(err error, message string) error {
	if _, ok := models.AsError(err); ok {
		return err
	}
	return models.NewInternalError(message, err)
}
