package prozorro

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"procurement_sync/internal/domain"
)

const DefaultBaseURL = "https://public-api.prozorro.gov.ua/api/2.5"

// ErrNotFound is returned when the API has no tender under the requested id.
var ErrNotFound = errors.New("tender not found")

// Config holds Prozorro client configuration.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client reads the public Prozorro API. No authentication is needed.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:        strings.TrimRight(baseURL, "/"),
		maxAttempts:    max(cfg.MaxAttempts, 1),
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "prozorro"),
	}
}

// FetchFeedPage reads one page of the tender change feed.
func (c *Client) FetchFeedPage(ctx context.Context, q domain.FeedQuery) (*domain.FeedPage, error) {
	params := url.Values{}
	if q.Offset != "" {
		params.Set("offset", q.Offset)
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}
	params.Set("limit", strconv.Itoa(limit))
	if q.Descending {
		params.Set("descending", "1")
	}
	if len(q.Fields) > 0 {
		params.Set("opt_fields", strings.Join(q.Fields, ","))
	}

	var resp feedResponse
	if err := c.get(ctx, c.baseURL+"/tenders?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("fetch feed page: %w", err)
	}

	page := resp.toDomain()
	c.logger.Debug("fetched feed page", "offset", q.Offset, "items", len(page.Items), "next_offset", page.NextOffset)
	return page, nil
}

func (c *Client) FetchTender(ctx context.Context, uuid string) (*domain.Tender, error) {
	var resp tenderResponse
	if err := c.get(ctx, c.baseURL+"/tenders/"+url.PathEscape(uuid), &resp); err != nil {
		return nil, fmt.Errorf("fetch tender %s: %w", uuid, err)
	}
	return resp.Data.toDomain(), nil
}

func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.initialBackoff
	policy.MaxInterval = c.maxBackoff
	policy.MaxElapsedTime = 0

	attempt := 0
	operation := func() error {
		attempt++
		return c.doRequest(ctx, rawURL, out)
	}
	notify := func(err error, wait time.Duration) {
		c.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", wait,
			"error", err,
		)
	}

	b := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(c.maxAttempts-1)), ctx)
	return backoff.RetryNotify(operation, b, notify)
}

func (c *Client) doRequest(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "ProcurementSync/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return backoff.Permanent(ErrNotFound)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	default:
		return backoff.Permanent(fmt.Errorf("unexpected status: %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return backoff.Permanent(fmt.Errorf("decode response: %w", err))
	}
	return nil
}
