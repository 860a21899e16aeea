// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inspire is a client for the INSPIRE-HEP REST API.
package inspire

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/mwbub/get-paper/pkg/types"
)

// IDType selects the INSPIRE identifier namespace used to look up a record.
type IDType string

const (
	IDArxiv      IDType = "arxiv"
	IDDOI        IDType = "doi"
	IDLiterature IDType = "literature"
)

// Base URLs for INSPIRE and the arXiv PDF fallback. Declared as vars so
// tests can substitute httptest servers.
var (
	APIBase      = "https://inspirehep.net/api/"
	ArxivPDFBase = "https://arxiv.org/pdf/"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 10 * time.Second

// RequestRate caps outbound request throughput. INSPIRE asks clients to
// stay under 15 requests per 5 seconds; two per second keeps well clear
// of that. Tests raise it to run without delays.
var RequestRate = rate.Limit(2)

const (
	defaultMaxRetries = 5
	defaultTimeout    = 60 * time.Second
	defaultUserAgent  = "get-paper"
)

// Client calls the INSPIRE API with client-side rate limiting and
// bounded retry on HTTP 429.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
	maxRetries int
}

// NewClient returns a Client configured from cfg. Zero values fall back
// to defaults (60 s timeout, "get-paper" user agent).
func NewClient(cfg types.HTTPConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(RequestRate, 1),
		userAgent:  userAgent,
		maxRetries: defaultMaxRetries,
	}
}

// RecordURL returns the API URL for an identifier.
func RecordURL(typ IDType, id string) string {
	return APIBase + string(typ) + "/" + id
}

// FetchRecord retrieves and decodes the literature record for id.
func (c *Client) FetchRecord(ctx context.Context, typ IDType, id string) (*Record, error) {
	resp, err := c.Get(ctx, RecordURL(typ, id), "application/json")
	if err != nil {
		return nil, fmt.Errorf("INSPIRE request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("no INSPIRE record for %s %s", typ, id)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("INSPIRE API returned HTTP %d", resp.StatusCode)
	}

	var rec Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("parsing INSPIRE response: %w", err)
	}
	return &rec, nil
}

// FetchBibTeX retrieves the BibTeX rendering of a record via its bibtex
// link.
func (c *Client) FetchBibTeX(ctx context.Context, rec *Record) (string, error) {
	url, err := rec.BibtexURL()
	if err != nil {
		return "", err
	}

	resp, err := c.Get(ctx, url, "application/x-bibtex")
	if err != nil {
		return "", fmt.Errorf("BibTeX request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("BibTeX endpoint returned HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading BibTeX response: %w", err)
	}
	return string(data), nil
}

// Get performs a rate-limited GET, retrying on HTTP 429 with exponential
// backoff. The delay starts at RetryBaseDelay and doubles each attempt.
// After exhausting retries the last 429 response is returned so the
// caller can inspect it. The caller owns the response body.
func (c *Client) Get(ctx context.Context, url, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests || attempt >= c.maxRetries {
			return resp, nil
		}

		// Drain and close the body before retrying.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}
