// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package nasa

import (
	"context"

	"github.com/tomtom215/nasa-explorer/internal/models"
	"github.com/tomtom215/nasa-explorer/internal/validation"
)

const (
	pathEPICNatural = "/EPIC/api/natural"

	msgEPICError = "Error fetching EPIC images"
)

// EPICQuery selects a capture date; empty Date means the most recent set.
type EPICQuery struct {
	Date string `query:"date" validate:"omitempty,nasadate"`
}

// EPICService serves DSCOVR EPIC natural-color imagery.
type EPICService struct {
	upstream Upstream
}

// NewEPICService creates an EPICService.
func NewEPICService(u Upstream) *EPICService {
	return &EPICService{upstream: u}
}

// GetImages returns the image metadata for q.Date.
func (s *EPICService) GetImages(ctx context.Context, q EPICQuery) (models.Envelope[[]models.EPICImage], error) {
	if err := validation.Struct(&q); err != nil {
		return models.Envelope[[]models.EPICImage]{}, err
	}

	path := pathEPICNatural
	if q.Date != "" {
		path += "/date/" + q.Date
	}

	var raw []models.EPICImage
	if err := s.upstream.Get(ctx, path, nil, &raw); err != nil {
		return models.Envelope[[]models.EPICImage]{}, wrap(err, msgEPICError)
	}

	images := make([]models.EPICImage, len(raw))
	for i := range raw {
		images[i] = raw[i]
		images[i].Coords = models.EPICCoords{CentroidCoordinates: raw[i].CentroidCoordinates}
	}
	return models.OK(images), nil
}
