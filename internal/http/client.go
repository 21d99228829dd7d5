// Package http wraps the HTTP transport for the Wavefront API. It executes
// single requests; 4xx/5xx responses are ordinary return values, never
// errors, so the envelope layer above can normalize them.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/wavefront-tools/wavefront-go/internal/constants"
	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
)

// TokenProvider supplies the bearer credential for each request.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenProvider for a fixed API token.
type StaticToken string

// Token implements TokenProvider.
func (t StaticToken) Token(ctx context.Context) (string, error) {
	return string(t), nil
}

// Request describes one HTTP exchange.
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	Body        interface{}
	Headers     map[string]string
	ContentType string
}

// Response is the raw result of one HTTP exchange.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes requests against one Wavefront instance. Transient
// failures (connection errors, 429, 5xx) are retried by the underlying
// retryablehttp transport.
type Client struct {
	baseURL   string
	http      *retryablehttp.Client
	tokens    TokenProvider
	logger    wavefront.Logger
	debug     bool
	userAgent string
	cache     wavefront.Cache
	cacheTTL  time.Duration
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets a logger for the HTTP layer.
func WithLogger(logger wavefront.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes the transport retry behavior.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.http.RetryMax = retryMax
		c.http.RetryWaitMin = waitMin
		c.http.RetryWaitMax = waitMax
	}
}

// WithTimeout sets the per-request timeout of the underlying transport.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.HTTPClient.Timeout = timeout
	}
}

// WithCache caches successful GET responses for ttl.
func WithCache(cache wavefront.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string, tokens TokenProvider, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil

	client := &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		http:      retryClient,
		tokens:    tokens,
		userAgent: "wavefront-go",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes one request. An error is returned only for transport-level
// failures; any HTTP status, including 4xx/5xx, yields a Response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	cacheKey := wavefront.CacheKey(req.Method, fullURL)
	if cached := c.fromCache(ctx, req.Method, cacheKey); cached != nil {
		return cached, nil
	}

	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	err = c.setHeaders(ctx, httpReq, req)
	if err != nil {
		return nil, err
	}

	c.logRequest(req)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	c.logResponse(req, resp)
	c.toCache(ctx, req.Method, cacheKey, resp)

	return resp, nil
}

func encodeBody(body interface{}) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case *wavefront.RequestBody:
		raw, err := b.Bytes()
		if err != nil {
			return nil, err
		}

		return raw, nil
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		return raw, nil
	}
}

func (c *Client) setHeaders(ctx context.Context, httpReq *retryablehttp.Request, req *Request) error {
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	contentType := req.ContentType
	if contentType == "" && req.Body != nil {
		contentType = "application/json"
	}

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("getting token: %w", err)
		}

		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return nil
}

func (c *Client) fromCache(ctx context.Context, method, key string) *Response {
	if c.cache == nil || method != http.MethodGet {
		return nil
	}

	entry, err := c.cache.Get(ctx, key)
	if err != nil {
		return nil
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP cache hit", map[string]interface{}{"key": key})
	}

	return &Response{StatusCode: entry.StatusCode, Body: entry.Body}
}

func (c *Client) toCache(ctx context.Context, method, key string, resp *Response) {
	if c.cache == nil || method != http.MethodGet {
		return
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return
	}

	_ = c.cache.Set(ctx, key, &wavefront.CacheEntry{
		Body:       resp.Body,
		StatusCode: resp.StatusCode,
		StoredAt:   time.Now(),
		TTL:        c.cacheTTL,
	})
}

func (c *Client) logRequest(req *Request) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"path":   req.Path,
	})
}

func (c *Client) logResponse(req *Request, resp *Response) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"method":      req.Method,
		"path":        req.Path,
		"status_code": resp.StatusCode,
	})
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// Execute implements wavefront.Executor, bridging the paginator's page
// requests onto the transport.
func (c *Client) Execute(ctx context.Context, req *wavefront.PageRequest) ([]byte, int, error) {
	var body interface{}
	if req.Body != nil {
		body = req.Body
	}

	resp, err := c.Do(ctx, &Request{
		Method:      req.Method,
		Path:        req.Path,
		Query:       req.Query,
		Body:        body,
		ContentType: req.ContentType,
	})
	if err != nil {
		return nil, 0, err
	}

	return resp.Body, resp.StatusCode, nil
}
