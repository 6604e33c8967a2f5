package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"petvizor/internal/platform/httpclient"
)

var (
	ErrNotConfigured = errors.New("supabase client not configured")
	ErrUnauthorized  = errors.New("supabase unauthorized")
	ErrUpstream      = errors.New("supabase upstream error")
)

// Config del cliente del backend gestionado.
// AnonKey es el tier público (verificación de sesión); ServiceKey el
// privilegiado (data plane y object storage).
type Config struct {
	BaseURL    string
	AnonKey    string
	ServiceKey string
	Bucket     string

	Timeout   time.Duration
	Transport http.RoundTripper // inyectable para tests
}

type Client struct {
	http *httpclient.Client

	baseURL    string
	anonKey    string
	serviceKey string
	bucket     string
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	var hc *httpclient.Client
	if cfg.Transport != nil {
		hc = httpclient.NewWithTransport(timeout, cfg.Transport)
	} else {
		hc = httpclient.New(timeout)
	}

	return &Client{
		http:       hc,
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		anonKey:    strings.TrimSpace(cfg.AnonKey),
		serviceKey: strings.TrimSpace(cfg.ServiceKey),
		bucket:     strings.TrimSpace(cfg.Bucket),
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.baseURL != "" && c.serviceKey != ""
}

func (c *Client) hasAuthTier() bool {
	return c != nil && c.baseURL != "" && c.anonKey != ""
}

// serviceHeaders arma los headers del tier privilegiado.
func (c *Client) serviceHeaders() map[string]string {
	return map[string]string{
		"apikey":        c.serviceKey,
		"Authorization": "Bearer " + c.serviceKey,
	}
}

// rest hace una llamada JSON al data plane (/rest/v1/...).
func (c *Client) rest(ctx context.Context, method, path string, headers map[string]string, in, out any) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}

	merged := c.serviceHeaders()
	for k, v := range headers {
		merged[k] = v
	}

	if err := c.http.DoJSON(ctx, method, c.baseURL+path, merged, in, out); err != nil {
		return wrapUpstream(err)
	}
	return nil
}

func wrapUpstream(err error) error {
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return ErrUnauthorized
		}
		return fmt.Errorf("%w: status=%d", ErrUpstream, httpErr.StatusCode)
	}
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}
