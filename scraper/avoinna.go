package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL   = "https://avoinna24.fi"
	SlotPath         = "/api/slot"
	DefaultSubdomain = "arenacenter"

	// The API rejects clients that do not look like a browser.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.36"

	// Responses are a handful of records; anything larger is not a slot list.
	maxBodyBytes = 4 << 20
)

// Avoinna queries the avoinna24.fi slot endpoint.
type Avoinna struct {
	client    *http.Client
	baseURL   string
	subdomain string
	userAgent string
	log       *zap.Logger
}

// Option configures an Avoinna client.
type Option func(*Avoinna)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(a *Avoinna) { a.client = c }
}

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(a *Avoinna) { a.baseURL = strings.TrimRight(u, "/") }
}

func WithSubdomain(s string) Option {
	return func(a *Avoinna) { a.subdomain = s }
}

func WithUserAgent(ua string) Option {
	return func(a *Avoinna) { a.userAgent = ua }
}

func WithLogger(l *zap.Logger) Option {
	return func(a *Avoinna) { a.log = l }
}

// NewAvoinna creates a client. One client is meant to be reused for every
// court in a run so connections are shared.
func NewAvoinna(timeout time.Duration, opts ...Option) *Avoinna {
	a := &Avoinna{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL:   DefaultBaseURL,
		subdomain: DefaultSubdomain,
		userAgent: DefaultUserAgent,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Slots fetches the query and extracts its slot records.
func (a *Avoinna) Slots(ctx context.Context, q Params) ([]Slot, error) {
	resp, err := a.Fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	slots := ExtractSlots(resp)
	a.log.Debug("slots extracted",
		zap.Int("records", len(resp.Data)),
		zap.Int("slots", len(slots)),
		zap.String("date", q.Get("filter[date]")))
	return slots, nil
}

// Fetch issues the GET request and decodes the envelope.
func (a *Avoinna) Fetch(ctx context.Context, q Params) (*Response, error) {
	urlStr := a.baseURL + SlotPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", a.userAgent)
	req.Header.Set("X-Subdomain", a.subdomain)
	req.Header.Set("Accept", "application/json")

	a.log.Debug("requesting slots", zap.String("url", urlStr))

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	a.log.Debug("slot response", zap.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestFailedError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrTransport, err)
	}

	return DecodeResponse(body)
}
