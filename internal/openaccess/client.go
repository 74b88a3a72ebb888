package openaccess

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"

	apierrors "github.com/AlexLin1234/smithsonian-mcp-server/internal/errors"
	"github.com/AlexLin1234/smithsonian-mcp-server/metrics"
	"github.com/AlexLin1234/smithsonian-mcp-server/tracing"
)

// Client provides access to the Smithsonian Open Access API. Each
// operation issues exactly one HTTP GET; the client holds no state across
// calls beyond the immutable config.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(client *Client) {
		client.logger = l
	}
}

// NewClient creates a new Open Access API client
func NewClient(config *Config, opts ...ClientOption) *Client {
	c := &Client{
		config:     config,
		httpClient: newHTTPClient(config.Timeout),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// searchParams are the /search query parameters. Encoded with
// go-querystring so the outbound parameter set is visible in one place.
type searchParams struct {
	APIKey          string `url:"api_key"`
	Query           string `url:"q"`
	Rows            int    `url:"rows"`
	Start           int    `url:"start"`
	OnlineMediaType string `url:"online_media_type,omitempty"`
}

// keyParams carry only the API key, for /content/{id}.
type keyParams struct {
	APIKey string `url:"api_key"`
}

// termsParams are the /terms/{category} query parameters.
type termsParams struct {
	APIKey     string `url:"api_key"`
	StartsWith string `url:"starts_with,omitempty"`
}

// Search queries the collection. Rows and Start are clamped before the
// request is built, so out-of-range caller values never reach the wire.
func (c *Client) Search(ctx context.Context, q SearchQuery) (*SearchResponse, error) {
	params := searchParams{
		APIKey: c.config.APIKey,
		Query:  q.Query,
		Rows:   ClampRows(q.Rows),
		Start:  ClampStart(q.Start),
	}
	if q.OnlineMediaOnly {
		params.OnlineMediaType = "Images"
	}

	var env searchEnvelope
	if err := c.doRequest(ctx, "/search", params, &env); err != nil {
		return nil, err
	}

	if env.Response == nil {
		return nil, &apierrors.ParseError{Endpoint: "/search", Err: fmt.Errorf("missing response object")}
	}

	return &SearchResponse{
		Rows:     env.Response.Rows,
		RowCount: env.Response.RowCount,
	}, nil
}

// GetItem retrieves the full record for one item. An upstream 404 and a
// 2xx response with an empty content object both surface as NotFoundError.
func (c *Client) GetItem(ctx context.Context, itemID string) (*Row, error) {
	if err := ValidateItemID(itemID); err != nil {
		return nil, err
	}

	endpoint := "/content/" + url.PathEscape(itemID)

	var env contentEnvelope
	if err := c.doRequest(ctx, endpoint, keyParams{APIKey: c.config.APIKey}, &env); err != nil {
		return nil, notFoundOn404(err, "item", itemID)
	}

	if env.Response == nil || env.Response.ID == "" {
		return nil, apierrors.NewNotFoundError("item", itemID)
	}

	return env.Response, nil
}

// GetCategoryTerms enumerates the controlled-vocabulary terms of a facet
// category. The optional startsWith filter is applied upstream.
func (c *Client) GetCategoryTerms(ctx context.Context, category, startsWith string) (*TermsResponse, error) {
	if err := ValidateCategory(category); err != nil {
		return nil, err
	}

	endpoint := "/terms/" + url.PathEscape(category)

	var env termsEnvelope
	if err := c.doRequest(ctx, endpoint, termsParams{APIKey: c.config.APIKey, StartsWith: startsWith}, &env); err != nil {
		return nil, notFoundOn404(err, "category", category)
	}

	if env.Response == nil {
		return nil, &apierrors.ParseError{Endpoint: endpoint, Err: fmt.Errorf("missing response object")}
	}

	return &TermsResponse{
		Category: category,
		Terms:    env.Response.Terms,
	}, nil
}

// doRequest performs one HTTP GET against the API and decodes the JSON
// body into result. It owns the error mapping: transport failures become
// timeout/cancelled/upstream kinds, non-2xx statuses become UpstreamError,
// undecodable bodies become ParseError. The response body is closed on
// every path. No retries are performed.
func (c *Client) doRequest(ctx context.Context, endpoint string, params any, result any) (err error) {
	ctx, span := tracing.StartSpan(ctx, "openaccess.api."+metricAction(endpoint))
	defer func() {
		tracing.RecordError(span, err)
		span.End()
	}()
	tracing.AddAPIAttributes(span, endpoint, "")

	v, err := query.Values(params)
	if err != nil {
		return fmt.Errorf("failed to encode query parameters: %w", err)
	}

	reqURL := c.config.BaseURL + endpoint + "?" + v.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start).Seconds()

	if err != nil {
		typed := apierrors.ClassifyTransport(endpoint, c.config.Timeout, err)
		metrics.RecordAPICall(metricAction(endpoint), duration, false, apierrors.Code(typed))
		c.logger.Warn("API request failed",
			"endpoint", endpoint,
			"error", typed)
		return typed
	}

	body, err := readAndClose(resp)
	if err != nil {
		metrics.RecordAPICall(metricAction(endpoint), duration, false, "read_error")
		return apierrors.ClassifyTransport(endpoint, c.config.Timeout, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		typed := &apierrors.UpstreamError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       truncate(string(body), 200),
		}
		metrics.RecordAPICall(metricAction(endpoint), duration, false, apierrors.Code(typed))
		return typed
	}

	if err := json.Unmarshal(body, result); err != nil {
		metrics.RecordAPICall(metricAction(endpoint), duration, false, "parse_error")
		return &apierrors.ParseError{Endpoint: endpoint, Err: err}
	}

	metrics.RecordAPICall(metricAction(endpoint), duration, true, "")
	return nil
}

// notFoundOn404 rewrites an upstream 404 into the caller-visible
// NotFoundError kind; all other errors pass through unchanged.
func notFoundOn404(err error, entityType, identifier string) error {
	var ue *apierrors.UpstreamError
	if errors.As(err, &ue) && ue.StatusCode == http.StatusNotFound {
		return apierrors.NewNotFoundError(entityType, identifier)
	}
	return err
}

// metricAction collapses parameterized endpoints to a bounded label set.
func metricAction(endpoint string) string {
	switch {
	case endpoint == "/search":
		return "search"
	case len(endpoint) > 9 && endpoint[:9] == "/content/":
		return "content"
	case len(endpoint) > 7 && endpoint[:7] == "/terms/":
		return "terms"
	default:
		return "other"
	}
}

// readAndClose reads the response body and closes it
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return body, err
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// newHTTPClient creates an HTTP client with optimized transport settings
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		DisableCompression:  false,
		ForceAttemptHTTP2:   true,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
