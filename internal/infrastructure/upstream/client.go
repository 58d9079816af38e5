// Package upstream provides CatalogSource implementations for the
// third-party mythology API and for local JSON snapshots.
package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/ersonp/mythdex/internal/domain/entities"
	"github.com/ersonp/mythdex/internal/domain/ports"
	"github.com/ersonp/mythdex/internal/infrastructure/config"
	"github.com/ersonp/mythdex/internal/infrastructure/logger"
)

// RequestIDHeader carries the per-fetch correlation id.
const RequestIDHeader = "X-Request-ID"

// Client fetches catalogs over HTTP. It issues exactly one GET per Fetch:
// no retries, no caching.
type Client struct {
	http    *resty.Client
	baseURL string
	logger  ports.Logger
}

// NewClient creates a new upstream API client.
func NewClient(cfg config.UpstreamConfig, log ports.Logger) (*Client, error) {
	baseURL, err := validateBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.Nop()
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(0).
		SetLogger(restyLogger{log})
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}

	return &Client{
		http:    httpClient,
		baseURL: baseURL,
		logger:  log,
	}, nil
}

func validateBaseURL(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("upstream base URL is required")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid upstream base URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("upstream base URL scheme must be http or https, got: %q", raw)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("upstream base URL must have a host, got: %q", raw)
	}

	return strings.TrimRight(raw, "/"), nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Fetch performs GET <base>/<category path> and returns the body.
// Transport failures and non-2xx answers become *entities.RemoteFetchError.
func (c *Client) Fetch(ctx context.Context, category entities.Category) ([]byte, error) {
	endpoint := c.baseURL + "/" + category.Path()
	requestID := uuid.NewString()

	c.logger.Debug("fetching catalog", "category", category, "url", endpoint, "request_id", requestID)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID).
		Get("/" + category.Path())
	if err != nil {
		return nil, &entities.RemoteFetchError{
			Category: category,
			URL:      endpoint,
			Err:      err,
		}
	}

	c.logger.Debug("catalog response", "category", category, "status", resp.StatusCode(),
		"bytes", len(resp.Body()), "request_id", requestID)

	if !resp.IsSuccess() {
		return nil, &entities.RemoteFetchError{
			Category:   category,
			URL:        endpoint,
			StatusCode: resp.StatusCode(),
			Body:       strings.TrimSpace(resp.String()),
		}
	}

	return resp.Body(), nil
}

// restyLogger routes resty's printf-style diagnostics into ports.Logger.
type restyLogger struct {
	l ports.Logger
}

func (r restyLogger) Errorf(format string, v ...any) { r.l.Error(fmt.Sprintf(format, v...)) }
func (r restyLogger) Warnf(format string, v ...any)  { r.l.Warn(fmt.Sprintf(format, v...)) }
func (r restyLogger) Debugf(format string, v ...any) { r.l.Debug(fmt.Sprintf(format, v...)) }
