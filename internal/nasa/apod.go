// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package nasa

import (
	"context"
	"net/url"

	"github.com/tomtom215/nasa-explorer/internal/models"
	"github.com/tomtom215/nasa-explorer/internal/validation"
)

const (
	pathAPOD = "/planetary/apod"

	msgAPODError = "Failed to fetch Astronomy Picture of the Day"
)

// APODQuery selects a single day; empty Date means today.
type APODQuery struct {
	Date string `query:"date" validate:"omitempty,nasadate"`
}

// APODService serves the Astronomy Picture of the Day.
type APODService struct {
	upstream Upstream
}

// NewAPODService creates an APODService.
func NewAPODService(u Upstream) *APODService {
	return &APODService{upstream: u}
}

// GetAPOD returns the picture for q.Date.
func (s *APODService) GetAPOD(ctx context.Context, q APODQuery) (models.Envelope[models.APOD], error) {
	if err := validation.Struct(&q); err != nil {
		return models.Envelope[models.APOD]{}, err
	}

	params := url.Values{}
	if q.Date != "" {
		params.Set("date", q.Date)
	}

	var raw models.APOD
	if err := s.upstream.Get(ctx, pathAPOD, params, &raw); err != nil {
		return models.Envelope[models.APOD]{}, wrap(err, msgAPODError)
	}

	return models.OK(models.APOD{
		Date:        raw.Date,
		Title:       raw.Title,
		Explanation: raw.Explanation,
		URL:         raw.URL,
		HDURL:       raw.HDURL,
		MediaType:   raw.MediaType,
		Copyright:   raw.Copyright,
	}), nil
}
