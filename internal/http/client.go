// Package http implements the transport layer shared by the resource
// clients: URL assembly against a fixed API origin, request issuing via
// retryablehttp, and mapping of response statuses onto the package's error
// taxonomy.
package http

import (
	"context"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/csperkins/datatracker-go/pkg/datatracker"
)

// Client is a thin HTTP client bound to one API origin. It holds no
// mutable per-request state and is safe for concurrent use.
type Client struct {
	baseURL   string
	http      *retryablehttp.Client
	userAgent string
	logger    datatracker.Logger
	debug     bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the structured logger used for debug output.
func WithLogger(logger datatracker.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPTimeout sets the per-request timeout of the underlying transport.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables transport-level retries for transient failures.
// Without it the client performs no retries at all.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.http.RetryMax = retryMax
		c.http.RetryWaitMin = waitMin
		c.http.RetryWaitMax = waitMax
	}
}

// NewClient creates a new HTTP client for the given API origin.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil

	client := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Request represents an HTTP request to the API. Path is server-relative
// and may already carry a raw query string (continuation cursors do);
// Query, when non-empty, is appended to it.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
}

// Response represents an HTTP response with a fully read body.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Do executes a request. A completed response with a non-2xx status
// returns the response alongside a NotFoundError; a request that could
// not be completed returns a TransportError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path

	if len(req.Query) > 0 {
		separator := "?"
		if strings.Contains(req.Path, "?") {
			separator = "&"
		}

		fullURL += separator + req.Query.Encode()
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, nil)
	if err != nil {
		return nil, &datatracker.TransportError{Path: req.Path, Err: err}
	}

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

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &datatracker.TransportError{Path: req.Path, Err: err}
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &datatracker.TransportError{Path: req.Path, Err: err}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    fullURL,
		})
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, &datatracker.NotFoundError{Path: req.Path, StatusCode: resp.StatusCode}
	}

	return resp, nil
}

// Get executes a GET request against path with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodGet,
		Path:   path,
		Query:  query,
	})
}
