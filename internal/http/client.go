// Package http implements the request executor and pagination engine of the
// golab client. It performs single HTTP round trips against the GitLab API,
// classifies their outcome into the typed error taxonomy, and records
// rate-limit telemetry from response headers.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/forgekit-io/golab/internal/constants"
	"github.com/forgekit-io/golab/pkg/golab"
)

// Response headers consumed by the client.
const (
	HeaderRateLimitRemaining = "RateLimit-Remaining"
	HeaderRateLimitReset     = "RateLimit-Reset"
	HeaderTotalPages         = "X-Total-Pages"
	HeaderTotal              = "X-Total"
)

// Client performs HTTP requests against a GitLab API base URL.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     golab.Logger
	debug      bool
	userAgent  string
	rateLimit  rateLimitTracker
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger golab.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging at debug level.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetryConfig swaps in a retrying transport. The client never retries
// unless this option is applied explicitly.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		retryClient := retryablehttp.NewClient()
		retryClient.RetryMax = retryMax
		retryClient.RetryWaitMin = retryWaitMin
		retryClient.RetryWaitMax = retryWaitMax
		retryClient.Logger = nil
		retryClient.HTTPClient.Timeout = c.httpClient.Timeout
		c.httpClient = retryClient.StandardClient()
	}
}

// NewClient creates a new HTTP client for the given base URL and token.
func NewClient(baseURL, token string, opts ...Option) *Client {
	client := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: constants.DefaultHTTPTimeout,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Request represents an HTTP request against a path relative to the base
// URL. The path may already embed a query string.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Do performs exactly one HTTP round trip and classifies its outcome.
//
// Rate-limit telemetry is recorded from the response headers on every
// response, success or failure. On a non-2xx status the response is
// returned together with a typed *golab.Error; transport failures are
// logged and propagated without an HTTP classification.
func (c *Client) Do(ctx context.Context, req *Request) (*golab.Response, error) {
	fullURL := c.buildURL(req.Path, req.Query)

	var bodyReader io.Reader

	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyReader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Defaults first; caller-supplied headers win on conflict.
	httpReq.Header.Set("PRIVATE-TOKEN", c.token)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("HTTP request failed", map[string]interface{}{
				"method": req.Method,
				"url":    fullURL,
				"error":  err.Error(),
			})
		}

		recordError("transport")

		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	c.rateLimit.UpdateFromHeaders(httpResp.Header)
	recordRequest(req.Method, httpResp.StatusCode, time.Since(start))

	// Best-effort body read; an unreadable body degrades to empty.
	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		body = nil
	}

	resp := &golab.Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"status": httpResp.StatusCode,
		})
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		apiErr := golab.NewHTTPError(httpResp.StatusCode, string(body), fullURL)
		recordError(string(apiErr.Kind))

		return resp, apiErr
	}

	resp.Data = decodeData(body)

	return resp, nil
}

// decodeData returns exactly one of parsed JSON, body text, or nil. A
// malformed body degrades to text, an empty body to nil; neither is an
// error.
func decodeData(body []byte) interface{} {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	var parsed interface{}

	err := json.Unmarshal(body, &parsed)
	if err == nil {
		return parsed
	}

	return string(body)
}

// buildURL joins the base URL, the relative path, and the query values.
// Query values are appended with '&' when the path already embeds a query
// string.
func (c *Client) buildURL(path string, query url.Values) string {
	fullURL := c.baseURL

	if !strings.HasPrefix(path, "/") {
		fullURL += "/"
	}

	fullURL += path

	if len(query) > 0 {
		separator := "?"
		if strings.Contains(fullURL, "?") {
			separator = "&"
		}

		fullURL += separator + query.Encode()
	}

	return fullURL
}

// RateLimit returns the telemetry captured from the most recent response.
func (c *Client) RateLimit() golab.RateLimitState {
	return c.rateLimit.State()
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*golab.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*golab.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*golab.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*golab.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
