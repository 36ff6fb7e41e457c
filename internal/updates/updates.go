// Package updates asks the release server whether a newer client exists.
//
// The server answers a plain GET with the latest client version as a bare
// integer (for example "12"). Anything else counts as a failed check.
package updates

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Result is the outcome of one check.
type Result int

const (
	Failed Result = iota
	UpToDate
	Available
)

func (r Result) String() string {
	switch r {
	case UpToDate:
		return "up-to-date"
	case Available:
		return "available"
	default:
		return "failed"
	}
}

// maxResponse bounds how much of the reply is read.
const maxResponse = 500

const checkTimeout = 10 * time.Second

// Checker compares the running version against the release server.
type Checker struct {
	url     string
	current int
	http    *http.Client
}

// New returns a Checker for url. current is the running client's version.
func New(url string, current int) *Checker {
	return &Checker{
		url:     strings.TrimSpace(url),
		current: current,
		http:    &http.Client{Timeout: checkTimeout},
	}
}

// URL returns the release server address.
func (c *Checker) URL() string { return c.url }

// Check fetches the latest version. Failed is returned together with the
// error that caused it.
func (c *Checker) Check(ctx context.Context) (Result, int, error) {
	if c == nil || c.url == "" {
		return Failed, 0, fmt.Errorf("update url not configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Failed, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := c.http.Do(req)
	if err != nil {
		return Failed, 0, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return Failed, 0, fmt.Errorf("update server returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponse))
	if err != nil {
		return Failed, 0, fmt.Errorf("read response: %w", err)
	}
	latest, err := strconv.Atoi(strings.TrimSpace(string(body)))
	if err != nil {
		return Failed, 0, fmt.Errorf("parse latest version %q: %w", strings.TrimSpace(string(body)), err)
	}
	if latest > c.current {
		return Available, latest, nil
	}
	return UpToDate, latest, nil
}
