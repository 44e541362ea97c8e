package openlibrary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bookbrowser/internal/platform/metrics"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://openlibrary.org"

// ErrNotFound is returned when the catalog answers 404 for a record.
var ErrNotFound = errors.New("openlibrary: not found")

// StatusError is returned for any other non-200 reply.
type StatusError struct {
	Code int
	Path string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openlibrary: unexpected status code %d for %s", e.Code, e.Path)
}

// Retryable reports whether the reply is worth another attempt.
func (e *StatusError) Retryable() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

type Config struct {
	BaseURL    string
	UserAgent  string
	RPS        float64
	MaxRetries int
	Timeout    time.Duration
	// Transport defaults to http.DefaultTransport. It is always wrapped for tracing.
	Transport http.RoundTripper
	Metrics   *metrics.Metrics
}

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
	maxRetries int
	metrics    *metrics.Metrics
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Transport == nil {
		cfg.Transport = http.DefaultTransport
	}
	limit := rate.Inf
	if cfg.RPS > 0 {
		limit = rate.Limit(cfg.RPS)
	}
	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(cfg.Transport),
		},
		userAgent:  cfg.UserAgent,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		limiter:    rate.NewLimiter(limit, 1),
		maxRetries: cfg.MaxRetries,
		metrics:    cfg.Metrics,
	}
}

func (c *Client) GetWork(ctx context.Context, workID string) (*Work, error) {
	var res Work
	if err := c.get(ctx, "work", "/works/"+url.PathEscape(workID)+".json", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetAuthor(ctx context.Context, authorID string) (*Author, error) {
	var res Author
	if err := c.get(ctx, "author", "/authors/"+url.PathEscape(authorID)+".json", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetAuthorWorks(ctx context.Context, authorID string, limit int) (*AuthorWorksResponse, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var res AuthorWorksResponse
	if err := c.get(ctx, "author_works", "/authors/"+url.PathEscape(authorID)+"/works.json", q, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// searchWorkFields is exactly what SearchDoc decodes.
const searchWorkFields = "key,title,cover_i"

func (c *Client) SearchWorks(ctx context.Context, query string, limit int) (*SearchResponse, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("fields", searchWorkFields)
	q.Set("limit", strconv.Itoa(limit))

	var res SearchResponse
	if err := c.get(ctx, "search_works", "/search.json", q, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) SearchAuthors(ctx context.Context, query string, limit int) (*AuthorSearchResponse, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))

	var res AuthorSearchResponse
	if err := c.get(ctx, "search_authors", "/search/authors.json", q, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetSubjectWorks(ctx context.Context, subject string, limit int) (*SubjectResponse, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var res SubjectResponse
	if err := c.get(ctx, "subject", "/subjects/"+url.PathEscape(SubjectSlug(subject))+".json", q, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetWorkRatings(ctx context.Context, workID string) (*RatingsResponse, error) {
	var res RatingsResponse
	if err := c.get(ctx, "ratings", "/works/"+url.PathEscape(workID)+"/ratings.json", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SubjectSlug converts a display subject ("Science Fiction") into the
// catalog's subject path segment ("science_fiction").
func SubjectSlug(subject string) string {
	return strings.Join(strings.Fields(strings.ToLower(subject)), "_")
}

func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values, target any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			// Backoff: 1s, 2s, 4s...
			backoff := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		start := time.Now()
		status, err := c.do(ctx, u, path, target)
		c.metrics.ObserveUpstream(endpoint, status, time.Since(start))
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		var statusErr *StatusError
		switch {
		case status == "decode_error", errors.Is(err, ErrNotFound):
			return err
		case errors.As(err, &statusErr) && !statusErr.Retryable():
			return err
		}
		lastErr = err
	}
	if c.maxRetries == 0 {
		return lastErr
	}
	return fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}

// do performs a single attempt and returns the status label used for metrics.
func (c *Client) do(ctx context.Context, u, path string, target any) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "error", err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "error", err
	}
	defer resp.Body.Close()

	status := strconv.Itoa(resp.StatusCode)
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return status, fmt.Errorf("%w: %s", ErrNotFound, path)
	case resp.StatusCode != http.StatusOK:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return status, &StatusError{Code: resp.StatusCode, Path: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return "decode_error", fmt.Errorf("openlibrary: decode %s: %w", path, err)
	}
	return status, nil
}
