// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/nasa-explorer/internal/breaker"
	"github.com/tomtom215/nasa-explorer/internal/logging"
	"github.com/tomtom215/nasa-explorer/internal/metrics"
	"github.com/tomtom215/nasa-explorer/internal/models"
)

const (
	// DefaultTimeout bounds a single upstream call.
	DefaultTimeout = 10 * time.Second

	// DefaultAPIKeyParam is the query parameter NASA reads the key from.
	DefaultAPIKeyParam = "api_key"

	// DemoAPIKey is used by keyed clients configured without a key.
	DemoAPIKey = "DEMO_KEY"

	// maxErrorBodySize limits how much of a failed response is read.
	maxErrorBodySize = 64 * 1024

	userAgent = "nasa-explorer/1.0"
)

// Config configures a Client.
type Config struct {
	// Name identifies the upstream in logs, metrics and health output.
	Name    string
	BaseURL string

	// Timeout defaults to DefaultTimeout. Ignored when HTTPClient is set.
	Timeout time.Duration

	APIKey      string
	APIKeyParam string

	// Keyless disables the API key parameter entirely.
	Keyless bool

	// RateLimit is the outbound requests-per-second budget. Zero disables it.
	RateLimit float64
	RateBurst int

	Breaker breaker.Settings

	HTTPClient *http.Client
}

// Client is a breaker-guarded JSON GET client for a single upstream.
//
// Thread Safety: safe for concurrent use.
type Client struct {
	name     string
	baseURL  string
	defaults url.Values
	http     *http.Client
	limiter  *rate.Limiter
	breaker  *breaker.Breaker
}

// New builds a Client, filling defaults for unset fields.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.APIKeyParam == "" {
		cfg.APIKeyParam = DefaultAPIKeyParam
	}
	if cfg.Breaker.Name == "" {
		cfg.Breaker.Name = cfg.Name
	}

	defaults := url.Values{}
	if !cfg.Keyless {
		key := strings.TrimSpace(cfg.APIKey)
		if key == "" {
			key = DemoAPIKey
		}
		defaults.Set(cfg.APIKeyParam, key)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &Client{
		name:     cfg.Name,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		defaults: defaults,
		http:     httpClient,
		limiter:  limiter,
		breaker:  breaker.New(cfg.Breaker),
	}
}

// Name returns the upstream name.
func (c *Client) Name() string {
	return c.name
}

// Breaker returns the client's circuit breaker.
func (c *Client) Breaker() *breaker.Breaker {
	return c.breaker
}

// Get performs a GET against BaseURL+path and decodes a 2xx JSON body into
// out. Per-call params override the client defaults. Every returned error is
// a *models.Error.
func (c *Client) Get(ctx context.Context, path string, params url.Values, out any) error {
	if c.limiter != nil {
		waitStart := time.Now()
		err := c.limiter.Wait(ctx)
		metrics.RecordUpstreamWait(c.name, time.Since(waitStart))
		if err != nil {
			metrics.RecordUpstreamRejected(c.name)
			return models.NewServiceUnavailableError(fmt.Errorf("%s: rate limiter: %w", c.name, err))
		}
	}

	done, err := c.breaker.Allow()
	if err != nil {
		metrics.RecordUpstreamRejected(c.name)
		return models.NewServiceUnavailableError(fmt.Errorf("%s: %w", c.name, err))
	}

	start := time.Now()
	status, err := c.do(ctx, path, params, out)
	duration := time.Since(start)
	metrics.RecordUpstreamRequest(c.name, status, duration)

	if err != nil && errors.Is(ctx.Err(), context.Canceled) {
		// The breaker excludes context.Canceled.
		done(ctx.Err())
		logging.Ctx(ctx).Debug().
			Str("upstream", c.name).
			Str("path", path).
			Dur("duration", duration).
			Msg("Upstream request canceled by caller")
		return err
	}

	done(err)
	if err != nil {
		logging.CtxWarn(ctx).
			Err(err).
			Str("upstream", c.name).
			Str("path", path).
			Int("status", status).
			Dur("duration", duration).
			Msg("Upstream request failed")
		return err
	}
	return nil
}

// do issues the request and returns the upstream status (0 when no response
// was received or it could not be decoded) with a *models.Error on failure.
func (c *Client) do(ctx context.Context, path string, params url.Values, out any) (int, error) {
	reqURL := c.buildURL(path, params)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return 0, models.NewUpstreamError(http.StatusInternalServerError, "", fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body := readBodyForError(resp.Body)
		return resp.StatusCode, models.NewUpstreamError(
			resp.StatusCode,
			extractMessage(body),
			fmt.Errorf("%s %s returned status %d", c.name, path, resp.StatusCode),
		)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return 0, models.NewUpstreamError(http.StatusInternalServerError, "", fmt.Errorf("failed to decode %s response: %w", c.name, err))
		}
	}
	return resp.StatusCode, nil
}

func (c *Client) buildURL(path string, params url.Values) string {
	query := url.Values{}
	for k, v := range c.defaults {
		query[k] = v
	}
	for k, v := range params {
		query[k] = v
	}

	reqURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}
	return reqURL
}

// transportError maps a failed round trip to a 503 UpstreamError.
func transportError(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		err = fmt.Errorf("upstream timeout: %w", err)
	default:
		err = fmt.Errorf("upstream connection failed: %w", err)
	}
	return models.NewUpstreamError(http.StatusServiceUnavailable, models.MsgExternalServiceUnavailable, err)
}

func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return nil
	}
	return body
}

// extractMessage pulls a human-readable message out of an error body.
// Returns "" when nothing usable is found.
func extractMessage(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ""
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		// Plain-text bodies are used as-is.
		if body[0] == '{' || body[0] == '[' || body[0] == '<' {
			return ""
		}
		return string(body)
	}

	switch v := payload.(type) {
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		return messageFromObject(v)
	}
	return ""
}

func messageFromObject(obj map[string]any) string {
	if nested, ok := obj["error"].(map[string]any); ok {
		if msg := stringField(nested, "message"); msg != "" {
			return msg
		}
	}
	for _, key := range []string{"msg", "message", "error_message"} {
		if msg := stringField(obj, key); msg != "" {
			return msg
		}
	}
	switch errs := obj["errors"].(type) {
	case string:
		if s := strings.TrimSpace(errs); s != "" {
			return s
		}
	case []any:
		for _, item := range errs {
			switch e := item.(type) {
			case string:
				if s := strings.TrimSpace(e); s != "" {
					return s
				}
			case map[string]any:
				if msg := stringField(e, "message"); msg != "" {
					return msg
				}
			}
		}
	}
	return stringField(obj, "error")
}

func stringField(obj map[string]any, key string) string {
	s, ok := obj[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}
