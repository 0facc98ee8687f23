// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package nasa

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/nasa-explorer/internal/models"
	"github.com/tomtom215/nasa-explorer/internal/validation"
)

const (
	pathLibrarySearch = "/search"

	msgLibraryError   = "Error searching NASA Image Library"
	msgYearRangeOrder = "year_start must not be after year_end"
)

// ImageLibraryQuery is a free-text search over the Image and Video Library.
type ImageLibraryQuery struct {
	Q         string `query:"q" validate:"required,notblank"`
	MediaType string `query:"media_type" validate:"omitempty,oneof=image video audio"`
	Page      *int   `query:"page" validate:"omitempty,gte=1"`
	PageSize  *int   `query:"page_size" validate:"omitempty,gte=1"`
	YearStart string `query:"year_start" validate:"omitempty,year"`
	YearEnd   string `query:"year_end" validate:"omitempty,year"`
}

// ImageLibraryService searches images-api.nasa.gov.
type ImageLibraryService struct {
	upstream Upstream
}

// NewImageLibraryService creates an ImageLibraryService. u should be a
// keyless client.
func NewImageLibraryService(u Upstream) *ImageLibraryService {
	return &ImageLibraryService{upstream: u}
}

// Search runs q against the library. page_size is clamped to 100.
func (s *ImageLibraryService) Search(ctx context.Context, q ImageLibraryQuery) (models.Envelope[models.ImageLibrary], error) {
	if err := validation.Struct(&q); err != nil {
		return models.Envelope[models.ImageLibrary]{}, err
	}
	// Four-digit years compare correctly as strings.
	if q.YearStart != "" && q.YearEnd != "" && q.YearStart > q.YearEnd {
		return models.Envelope[models.ImageLibrary]{}, models.NewValidationError(models.CodeValidation, msgYearRangeOrder)
	}

	params := url.Values{}
	params.Set("q", strings.TrimSpace(q.Q))
	params.Set("page", strconv.Itoa(validation.NormalizePage(q.Page)))
	params.Set("page_size", strconv.Itoa(validation.ClampPageSize(q.PageSize)))
	if q.MediaType != "" {
		params.Set("media_type", q.MediaType)
	}
	if q.YearStart != "" {
		params.Set("year_start", q.YearStart)
	}
	if q.YearEnd != "" {
		params.Set("year_end", q.YearEnd)
	}

	var result models.ImageLibrary
	if err := s.upstream.Get(ctx, pathLibrarySearch, params, &result); err != nil {
		return models.Envelope[models.ImageLibrary]{}, wrap(err, msgLibraryError)
	}
	if result.Collection.Items == nil {
		result.Collection.Items = []models.LibraryItem{}
	}
	return models.OK(result), nil
}
