// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package nasa

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/goccy/go-json"
)

// upstreamCall records one Get invocation.
type upstreamCall struct {
	Path   string
	Params url.Values
}

// fakeUpstream serves canned JSON bodies or errors keyed by path.
type fakeUpstream struct {
	mu     sync.Mutex
	bodies map[string]string
	errs   map[string]error
	calls  []upstreamCall
}

func newFakeUpstream() *fakeUpstream {
	return &fakeUpstream{bodies: map[string]string{}, errs: map[string]error{}}
}

func (f *fakeUpstream) respond(path, body string) *fakeUpstream {
	f.bodies[path] = body
	return f
}

func (f *fakeUpstream) fail(path string, err error) *fakeUpstream {
	f.errs[path] = err
	return f
}

func (f *fakeUpstream) Get(_ context.Context, path string, params url.Values, out any) error {
	f.mu.Lock()
	f.calls = append(f.calls, upstreamCall{Path: path, Params: params})
	err, hasErr := f.errs[path]
	body, hasBody := f.bodies[path]
	f.mu.Unlock()

	if hasErr {
		return err
	}
	if !hasBody {
		return fmt.Errorf("fakeUpstream: no response registered for %s", path)
	}
	return json.Unmarshal([]byte(body), out)
}

func (f *fakeUpstream) Calls() []upstreamCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]upstreamCall(nil), f.calls...)
}

func intPtr(v int) *int { return &v }
