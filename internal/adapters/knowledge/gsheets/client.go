package gsheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"petvizor/internal/domain/knowledge"
	"petvizor/internal/platform/httpclient"
)

const defaultBaseURL = "https://sheets.googleapis.com/v4"

var ErrUpstream = errors.New("sheets upstream error")

type Config struct {
	APIKey        string
	SpreadsheetID string
	ReadRange     string
	BaseURL       string

	Timeout   time.Duration
	Transport http.RoundTripper // inyectable para tests
}

type Client struct {
	http *httpclient.Client

	baseURL       string
	apiKey        string
	spreadsheetID string
	readRange     string
}

func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
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
		http:          hc,
		baseURL:       baseURL,
		apiKey:        strings.TrimSpace(cfg.APIKey),
		spreadsheetID: strings.TrimSpace(cfg.SpreadsheetID),
		readRange:     strings.TrimSpace(cfg.ReadRange),
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.apiKey != "" && c.spreadsheetID != ""
}

type valuesResponse struct {
	Values [][]string `json:"values"`
}

// FetchRows trae el rango fijo y arma los mapeos:
// fila 0 = headers, el resto se zipea header->celda.
// Sin datos => slice vacío, no error.
func (c *Client) FetchRows(ctx context.Context) ([]map[string]string, error) {
	if !c.IsConfigured() {
		return nil, knowledge.ErrNotConfigured
	}

	path := fmt.Sprintf("%s/spreadsheets/%s/values/%s?key=%s",
		c.baseURL,
		url.PathEscape(c.spreadsheetID),
		url.PathEscape(c.readRange),
		url.QueryEscape(c.apiKey),
	)

	var resp valuesResponse
	if err := c.http.DoJSON(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return zipRows(resp.Values), nil
}

func zipRows(values [][]string) []map[string]string {
	out := []map[string]string{}
	if len(values) < 2 {
		return out
	}

	headers := values[0]
	for _, row := range values[1:] {
		m := make(map[string]string, len(headers))
		for i, h := range headers {
			h = strings.TrimSpace(h)
			if h == "" {
				continue
			}
			if i < len(row) {
				m[h] = row[i]
			} else {
				m[h] = ""
			}
		}
		out = append(out, m)
	}
	return out
}
