package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/wavefront-tools/wavefront-go/internal/http"
	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
)

// do executes one request and normalizes the body into an envelope. A
// non-2xx envelope becomes a typed *wavefront.APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (*wavefront.APIResponse, error) {
	resp, err := c.httpClient.Do(ctx, &http.Request{Method: method, Path: path, Query: query, Body: body})
	if err != nil {
		return nil, err
	}

	parsed := wavefront.ParseResponse(resp.Body, resp.StatusCode)
	if err := parsed.Err(); err != nil {
		return nil, err
	}

	return parsed, nil
}

// paged walks a paginated endpoint and decodes every item into T.
func paged[T any](ctx context.Context, c *Client, req *wavefront.PageRequest, mode wavefront.PageMode, limit wavefront.Limit) ([]T, error) {
	pager, err := wavefront.NewPager(c.httpClient, req, mode, limit)
	if err != nil {
		return nil, err
	}

	if c.logger != nil {
		pager = pager.WithLogger(c.logger)
	}

	values, err := pager.All(ctx)
	if err != nil {
		return nil, err
	}

	return decodeItems[T](values)
}

// decodeItems converts dynamic page items into typed resources.
func decodeItems[T any](values []wavefront.Value) ([]T, error) {
	items := make([]T, 0, len(values))

	for _, value := range values {
		var item T

		err := value.Decode(&item)
		if err != nil {
			return nil, fmt.Errorf("decoding item: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}

// decodeOne converts the response value of a single-resource envelope.
func decodeOne[T any](resp *wavefront.APIResponse) (*T, error) {
	var item T

	err := resp.Response.Decode(&item)
	if err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &item, nil
}
