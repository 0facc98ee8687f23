// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package validation

import (
	"regexp"
	"strings"

	"github.com/tomtom215/nasa-explorer/internal/models"
)

// Rovers with a photo archive.
var Rovers = []string{"curiosity", "opportunity", "spirit"}

// Cameras accepted by the photos endpoint. Matching is case-sensitive.
var Cameras = []string{"FHAZ", "RHAZ", "MAST", "CHEMCAM", "MAHLI", "MARDI", "NAVCAM"}

// MediaTypes accepted by the Image and Video Library.
var MediaTypes = []string{"image", "video", "audio"}

// Pagination defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 100
	MaxPageSize     = 100
)

// MsgInvalidRover is returned for an unknown rover name.
const MsgInvalidRover = "Invalid rover name. Must be one of: curiosity, opportunity, spirit"

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// NormalizeRover returns the lower-case rover name, or a validation error.
func NormalizeRover(name string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, r := range Rovers {
		if r == lower {
			return lower, nil
		}
	}
	return "", models.NewValidationError(models.CodeValidation, MsgInvalidRover)
}

// IsValidCamera reports whether name is one of Cameras.
func IsValidCamera(name string) bool {
	for _, c := range Cameras {
		if c == name {
			return true
		}
	}
	return false
}

// IsValidYear reports whether s is a four-digit year.
func IsValidYear(s string) bool {
	return yearPattern.MatchString(s)
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// NormalizePage returns the requested page, or DefaultPage when absent.
func NormalizePage(page *int) int {
	if page == nil || *page < 1 {
		return DefaultPage
	}
	return *page
}

// ClampPageSize returns the requested page size bounded to MaxPageSize,
// or DefaultPageSize when absent.
func ClampPageSize(size *int) int {
	if size == nil || *size < 1 {
		return DefaultPageSize
	}
	if *size > MaxPageSize {
		return MaxPageSize
	}
	return *size
}
