package node

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// Fetcher reports node status. *Client implements it.
type Fetcher interface {
	FetchInfo(ctx context.Context) (*Info, error)
}

var _ Fetcher = (*Client)(nil)

// Endpoint locates the node's RPC server.
type Endpoint struct {
	Host     string
	Port     int
	User     string
	Password string
}

const (
	DefaultHost    = "127.0.0.1"
	DefaultPort    = 9347
	TestnetPort    = 19347
	requestTimeout = 5 * time.Second
	userAgent      = "eternalcoin-qt"
)

// Client talks to the node over HTTP JSON-RPC.
type Client struct {
	url      string
	user     string
	password string
	http     *http.Client
	nextID   atomic.Int64
}

// NewClient builds a Client for ep, filling in the default host and port.
func NewClient(ep Endpoint) (*Client, error) {
	host := strings.TrimSpace(ep.Host)
	if host == "" {
		host = DefaultHost
	}
	port := ep.Port
	if port == 0 {
		port = DefaultPort
	}
	if port < 0 || port > 65535 {
		return nil, fmt.Errorf("rpc port %d out of range", port)
	}
	return &Client{
		url:      "http://" + net.JoinHostPort(host, strconv.Itoa(port)) + "/",
		user:     ep.User,
		password: ep.Password,
		http:     &http.Client{Timeout: requestTimeout},
	}, nil
}

// URL returns the RPC endpoint URL.
func (c *Client) URL() string { return c.url }

// FetchInfo calls getinfo.
func (c *Client) FetchInfo(ctx context.Context) (*Info, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var info Info
	if err := c.call(ctx, "getinfo", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) call(ctx context.Context, method string, params []any, dest any) error {
	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(request{Method: method, Params: params, ID: c.nextID.Add(1)})
	if err != nil {
		return fmt.Errorf("encode %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.user != "" || c.password != "" {
		req.SetBasicAuth(c.user, c.password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("rpc %s: %w", method, ErrUnauthorized)
	}

	// The node reports RPC failures with a 500 and a JSON error body.
	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		if resp.StatusCode >= 400 {
			return fmt.Errorf("rpc %s returned status %d", method, resp.StatusCode)
		}
		return fmt.Errorf("decode response: %w", err)
	}
	if payload.Error != nil {
		return fmt.Errorf("rpc %s: %w", method, payload.Error)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("rpc %s returned status %d", method, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(payload.Result, dest); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}

// ErrUnauthorized means the node rejected the RPC credentials.
var ErrUnauthorized = errors.New("rpc credentials rejected")
