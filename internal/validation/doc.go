// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

// Package validation checks and normalizes caller-supplied NASA query
// parameters.
//
// Two layers are provided:
//
//   - Pure functions (IsValidDate, DaysBetween, CheckDateRange,
//     NormalizeRover, IsValidCamera, NormalizePage, ClampPageSize, IsBlank)
//     with no side effects.
//   - Struct validation through a go-playground/validator singleton with
//     the custom tags nasadate, rover, camera, year and notblank. Field
//     names in messages come from the query struct tag.
//
// Every failure is reported as a single *models.Error of kind validation
// carrying a human-readable message.
//
//	type EPICQuery struct {
//	    Date string `query:"date" validate:"omitempty,nasadate"`
//	}
//
//	if err := validation.Struct(&q); err != nil {
//	    return err // 400, "Invalid date format. Use YYYY-MM-DD"
//	}
package validation
