package supabase

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

// stubTransport responde en memoria y cuenta las llamadas; permite
// verificar que las validaciones locales no tocan la red.
type stubTransport struct {
	calls    int
	lastReq  *http.Request
	lastBody []byte
	fn       func(req *http.Request) *http.Response
}

func (s *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	s.calls++
	s.lastReq = req
	if req.Body != nil {
		s.lastBody, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}
	return s.fn(req), nil
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newTestClient(st *stubTransport) *Client {
	return NewClient(Config{
		BaseURL:    "https://proj.supabase.test",
		AnonKey:    "anon-key",
		ServiceKey: "service-key",
		Bucket:     "pet-photos",
		Transport:  st,
	})
}

func TestIsConfigured(t *testing.T) {
	if NewClient(Config{}).IsConfigured() {
		t.Fatal("empty config should not be configured")
	}
	if !newTestClient(&stubTransport{}).IsConfigured() {
		t.Fatal("full config should be configured")
	}
	// El tier de auth solo necesita base URL + anon key
	c := NewClient(Config{BaseURL: "https://x", AnonKey: "anon"})
	if c.IsConfigured() {
		t.Fatal("anon-only config must not unlock the data plane")
	}
	if !c.hasAuthTier() {
		t.Fatal("anon-only config should unlock the auth tier")
	}
}

func TestRest_Unauthorized(t *testing.T) {
	st := &stubTransport{fn: func(*http.Request) *http.Response {
		return jsonResponse(http.StatusUnauthorized, `{"message":"bad key"}`)
	}}
	c := newTestClient(st)

	var out []struct{}
	err := c.rest(context.Background(), http.MethodGet, "/rest/v1/roles", nil, nil, &out)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
