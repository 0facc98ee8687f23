// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package nasa

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tomtom215/nasa-explorer/internal/logging"
	"github.com/tomtom215/nasa-explorer/internal/models"
	"github.com/tomtom215/nasa-explorer/internal/validation"
)

const msgMarsRoverError = "Error fetching Mars Rover photos"

// MarsRoverQuery selects rover photos. When neither Sol nor EarthDate is set
// the rover's most recent earth date is used.
type MarsRoverQuery struct {
	Rover     string `query:"rover" validate:"required,rover"`
	EarthDate string `query:"earth_date" validate:"omitempty,nasadate"`
	Sol       *int   `query:"sol" validate:"omitempty,gte=0"`
	Camera    string `query:"camera" validate:"omitempty,camera"`
	Page      *int   `query:"page" validate:"omitempty,gte=1"`
}

type roverManifest struct {
	PhotoManifest struct {
		Name    string `json:"name"`
		MaxSol  int    `json:"max_sol"`
		MaxDate string `json:"max_date"`
	} `json:"photo_manifest"`
}

// MarsRoverService serves Mars rover photos.
type MarsRoverService struct {
	upstream Upstream
}

// NewMarsRoverService creates a MarsRoverService.
func NewMarsRoverService(u Upstream) *MarsRoverService {
	return &MarsRoverService{upstream: u}
}

// GetPhotos returns one page of photos for the query.
func (s *MarsRoverService) GetPhotos(ctx context.Context, q MarsRoverQuery) (models.Envelope[models.MarsRoverPhotos], error) {
	if err := validation.Struct(&q); err != nil {
		return models.Envelope[models.MarsRoverPhotos]{}, err
	}
	rover, err := validation.NormalizeRover(q.Rover)
	if err != nil {
		return models.Envelope[models.MarsRoverPhotos]{}, err
	}

	earthDate := q.EarthDate
	if q.Sol == nil && earthDate == "" {
		earthDate, err = s.latestEarthDate(ctx, rover)
		if err != nil {
			return models.Envelope[models.MarsRoverPhotos]{}, wrap(err, msgMarsRoverError)
		}
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(validation.NormalizePage(q.Page)))
	if q.Sol != nil {
		params.Set("sol", strconv.Itoa(*q.Sol))
	}
	if earthDate != "" {
		params.Set("earth_date", earthDate)
	}
	if q.Camera != "" {
		params.Set("camera", q.Camera)
	}

	var photos models.MarsRoverPhotos
	if err := s.upstream.Get(ctx, photosPath(rover), params, &photos); err != nil {
		return models.Envelope[models.MarsRoverPhotos]{}, wrap(err, msgMarsRoverError)
	}
	if photos.Photos == nil {
		photos.Photos = []models.RoverPhoto{}
	}
	return models.OK(photos), nil
}

// latestEarthDate reads the rover manifest's max_date.
func (s *MarsRoverService) latestEarthDate(ctx context.Context, rover string) (string, error) {
	var manifest roverManifest
	if err := s.upstream.Get(ctx, manifestPath(rover), nil, &manifest); err != nil {
		return "", err
	}

	maxDate := manifest.PhotoManifest.MaxDate
	if !validation.IsValidDate(maxDate) {
		return "", models.NewUpstreamError(http.StatusBadGateway, "", fmt.Errorf("manifest for %s has no usable max_date %q", rover, maxDate))
	}

	logging.Ctx(ctx).Debug().
		Str("rover", rover).
		Str("earth_date", maxDate).
		Msg("Defaulting to latest rover earth date")
	return maxDate, nil
}

func manifestPath(rover string) string {
	return "/mars-photos/api/v1/manifests/" + rover
}

func photosPath(rover string) string {
	return "/mars-photos/api/v1/rovers/" + rover + "/photos"
}
