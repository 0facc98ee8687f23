// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package nasa

import (
	"context"
	"net/url"
	"sort"

	"github.com/tomtom215/nasa-explorer/internal/models"
	"github.com/tomtom215/nasa-explorer/internal/validation"
)

const (
	pathNEOFeed = "/neo/rest/v1/feed"

	msgNEOError = "Failed to fetch Near Earth Objects data"
)

// NEOQuery is an inclusive date window of at most seven days.
type NEOQuery struct {
	StartDate string `query:"start_date" validate:"required,nasadate"`
	EndDate   string `query:"end_date" validate:"required,nasadate"`
}

// neoFeedResponse mirrors the upstream feed, keyed by date.
type neoFeedResponse struct {
	ElementCount     int                 `json:"element_count"`
	NearEarthObjects map[string][]rawNEO `json:"near_earth_objects"`
}

type rawNEO struct {
	ID                     string                   `json:"id"`
	Name                   string                   `json:"name"`
	EstimatedDiameter      models.EstimatedDiameter `json:"estimated_diameter"`
	IsPotentiallyHazardous bool                     `json:"is_potentially_hazardous_asteroid"`
	CloseApproachData      []models.CloseApproach   `json:"close_approach_data"`
}

// NEOService serves the Near Earth Object feed.
type NEOService struct {
	upstream Upstream
}

// NewNEOService creates a NEOService.
func NewNEOService(u Upstream) *NEOService {
	return &NEOService{upstream: u}
}

// GetNearEarthObjects returns the objects approaching Earth between the two
// dates. All parameter checks run before any upstream call.
func (s *NEOService) GetNearEarthObjects(ctx context.Context, q NEOQuery) (models.Envelope[models.NEOFeed], error) {
	if err := validateNEOQuery(q); err != nil {
		return models.Envelope[models.NEOFeed]{}, err
	}

	params := url.Values{}
	params.Set("start_date", q.StartDate)
	params.Set("end_date", q.EndDate)

	var raw neoFeedResponse
	if err := s.upstream.Get(ctx, pathNEOFeed, params, &raw); err != nil {
		return models.Envelope[models.NEOFeed]{}, wrap(err, msgNEOError)
	}

	return models.OK(flattenFeed(raw)), nil
}

func validateNEOQuery(q NEOQuery) error {
	if q.StartDate == "" || q.EndDate == "" {
		return models.NewValidationError(models.CodeRequiredParameters, models.MsgRequiredDates)
	}
	if err := validation.Struct(&q); err != nil {
		return err
	}
	return validation.CheckDateRange(q.StartDate, q.EndDate)
}

// flattenFeed turns the date-keyed map into a date-ordered list, keeping only
// the first close approach of each object.
func flattenFeed(raw neoFeedResponse) models.NEOFeed {
	dates := make([]string, 0, len(raw.NearEarthObjects))
	for date := range raw.NearEarthObjects {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	feed := models.NEOFeed{
		ElementCount:     raw.ElementCount,
		NearEarthObjects: make([]models.NEODate, 0, len(dates)),
	}
	for _, date := range dates {
		objects := raw.NearEarthObjects[date]
		day := models.NEODate{
			Date:    date,
			Count:   len(objects),
			Objects: make([]models.NearEarthObject, 0, len(objects)),
		}
		for i := range objects {
			day.Objects = append(day.Objects, reshapeNEO(&objects[i]))
		}
		feed.NearEarthObjects = append(feed.NearEarthObjects, day)
	}
	return feed
}

func reshapeNEO(o *rawNEO) models.NearEarthObject {
	neo := models.NearEarthObject{
		ID:                     o.ID,
		Name:                   o.Name,
		EstimatedDiameter:      o.EstimatedDiameter,
		IsPotentiallyHazardous: o.IsPotentiallyHazardous,
	}
	if len(o.CloseApproachData) > 0 {
		first := o.CloseApproachData[0]
		neo.CloseApproach = &first
	}
	return neo
}
