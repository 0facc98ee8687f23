// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateNASA(); err != nil {
		return err
	}

	if err := c.validateBreaker(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateNASA() error {
	if strings.TrimSpace(c.NASA.APIKey) == "" {
		return fmt.Errorf("NASA_API_KEY must not be blank (use DEMO_KEY for the shared demo quota)")
	}
	if err := validateHTTPURL(c.NASA.BaseURL, "NASA_BASE_URL"); err != nil {
		return err
	}
	if err := validateHTTPURL(c.NASA.ImageLibraryURL, "NASA_IMAGE_LIBRARY_URL"); err != nil {
		return err
	}
	if c.NASA.Timeout <= 0 {
		return fmt.Errorf("NASA_TIMEOUT must be positive, got %v", c.NASA.Timeout)
	}
	if c.NASA.RateLimit < 0 {
		return fmt.Errorf("NASA_RATE_LIMIT must not be negative")
	}
	if c.NASA.RateLimit > 0 && c.NASA.RateBurst < 1 {
		return fmt.Errorf("NASA_RATE_BURST must be at least 1 when NASA_RATE_LIMIT is set")
	}
	return nil
}

func (c *Config) validateBreaker() error {
	if c.Breaker.FailureThreshold < 1 {
		return fmt.Errorf("BREAKER_FAILURE_THRESHOLD must be at least 1, got %d", c.Breaker.FailureThreshold)
	}
	if c.Breaker.SuccessThreshold < 1 {
		return fmt.Errorf("BREAKER_SUCCESS_THRESHOLD must be at least 1, got %d", c.Breaker.SuccessThreshold)
	}
	if c.Breaker.Cooldown < 0 {
		return fmt.Errorf("BREAKER_COOLDOWN must not be negative, got %v", c.Breaker.Cooldown)
	}
	return nil
}

// validEnvironments defines the accepted ENVIRONMENT values
var validEnvironments = map[string]bool{
	"development": true,
	"dev":         true,
	"test":        true,
	"production":  true,
	"prod":        true,
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if !validEnvironments[strings.ToLower(c.Server.Environment)] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, test, production")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// HasWildcardCORS reports whether any origin is allowed. Startup logs a warning
// for it in production.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
