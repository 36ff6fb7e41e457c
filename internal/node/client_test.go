package node

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewClient(Endpoint{User: "alice", Password: "secret"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	c.url = server.URL + "/"
	return c
}

func TestNewClient_Defaults(t *testing.T) {
	c, err := NewClient(Endpoint{})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if c.URL() != "http://127.0.0.1:9347/" {
		t.Fatalf("URL = %q", c.URL())
	}
	if _, err := NewClient(Endpoint{Port: 70000}); err == nil {
		t.Fatal("expected error for out-of-range port")
	}
	c, _ = NewClient(Endpoint{Host: "::1", Port: 1})
	if c.URL() != "http://[::1]:1/" {
		t.Fatalf("URL = %q", c.URL())
	}
}

func TestFetchInfo_SendsJSONRPCWithBasicAuth(t *testing.T) {
	t.Parallel()

	var got request
	var user, pass string
	var ok bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok = r.BasicAuth()
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":{"version":11,"blocks":1234,"connections":8,"testnet":true,"errors":""},"error":null,"id":1}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	info, err := c.FetchInfo(ctx)
	if err != nil {
		t.Fatalf("FetchInfo returned error: %v", err)
	}
	if info.Version != 11 || info.Blocks != 1234 || info.Connections != 8 || !info.Testnet {
		t.Fatalf("FetchInfo payload = %#v", info)
	}
	if got.Method != "getinfo" || len(got.Params) != 0 || got.ID == 0 {
		t.Fatalf("request = %#v, want getinfo with empty params", got)
	}
	if !ok || user != "alice" || pass != "secret" {
		t.Fatalf("basic auth = %q/%q (%v), want alice/secret", user, pass, ok)
	}
}

func TestFetchInfo_RPCError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"result":null,"error":{"code":-28,"message":"Loading block index..."},"id":1}`))
	})

	_, err := c.FetchInfo(context.Background())
	var rpcErr *RPCError
	if !errors.As(err, &rpcErr) {
		t.Fatalf("FetchInfo error = %v, want *RPCError", err)
	}
	if rpcErr.Code != -28 || !strings.Contains(err.Error(), "Loading block index") {
		t.Fatalf("unexpected rpc error %v", err)
	}
}

func TestFetchInfo_Unauthorized(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	if _, err := c.FetchInfo(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("FetchInfo error = %v, want ErrUnauthorized", err)
	}
}

func TestFetchInfo_BadStatusWithoutBody(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	})
	_, err := c.FetchInfo(context.Background())
	if err == nil || !strings.Contains(err.Error(), "status 502") {
		t.Fatalf("FetchInfo error = %v, want status 502", err)
	}
}

func TestFetchInfo_NilClient(t *testing.T) {
	var c *Client
	if _, err := c.FetchInfo(context.Background()); err == nil {
		t.Fatal("expected error from nil client")
	}
}
