package client

import (
	"context"
	"net/http"

	"github.com/wavefront-tools/wavefront-go/internal/constants"
	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
)

// QueryClient implements wavefront.QueryClient against the chart API. Chart
// queries are single-shot: the endpoint has no pagination protocol.
type QueryClient struct {
	client *Client
}

// NewQueryClient creates a new chart query client.
func NewQueryClient(client *Client) *QueryClient {
	return &QueryClient{client: client}
}

// Run implements wavefront.QueryClient.Run.
func (c *QueryClient) Run(ctx context.Context, opts *wavefront.QueryOptions) (*wavefront.QueryResult, error) {
	resp, err := c.run(ctx, opts)
	if err != nil {
		return nil, err
	}

	return decodeOne[wavefront.QueryResult](resp)
}

// RunRaw implements wavefront.QueryClient.RunRaw, returning the normalized
// envelope for callers that navigate the result dynamically.
func (c *QueryClient) RunRaw(ctx context.Context, opts *wavefront.QueryOptions) (*wavefront.APIResponse, error) {
	return c.run(ctx, opts)
}

func (c *QueryClient) run(ctx context.Context, opts *wavefront.QueryOptions) (*wavefront.APIResponse, error) {
	if opts == nil || opts.Query == "" {
		return nil, wavefront.ErrQueryRequired
	}

	if c.client.logger != nil {
		c.client.logger.Debug("running chart query", map[string]interface{}{
			"query": truncateQuery(opts.Query),
		})
	}

	return c.client.do(ctx, http.MethodGet, "/api/v2/chart/api", opts.ToValues(), nil)
}

func truncateQuery(query string) string {
	if len(query) <= constants.QueryDisplayLength {
		return query
	}

	return query[:constants.QueryDisplayLength] + "..."
}
