package client

import (
	"context"
	"net/http"

	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
)

// SourcesClient implements wavefront.SourcesClient. Sources page by an
// opaque cursor, the source id of the next page.
type SourcesClient struct {
	client *Client
}

// NewSourcesClient creates a new sources client.
func NewSourcesClient(client *Client) *SourcesClient {
	return &SourcesClient{client: client}
}

// List implements wavefront.SourcesClient.List.
func (c *SourcesClient) List(ctx context.Context, opts *wavefront.CursorListOptions) ([]wavefront.Source, error) {
	req := &wavefront.PageRequest{
		Method: http.MethodGet,
		Path:   "/api/v2/source",
		Query:  opts.ToValues(),
	}

	return paged[wavefront.Source](ctx, c.client, req, wavefront.ModeQuery, opts.PageLimit())
}

// Get implements wavefront.SourcesClient.Get.
func (c *SourcesClient) Get(ctx context.Context, id string) (*wavefront.Source, error) {
	resp, err := c.client.do(ctx, http.MethodGet, "/api/v2/source/"+id, nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeOne[wavefront.Source](resp)
}

// Update implements wavefront.SourcesClient.Update.
func (c *SourcesClient) Update(ctx context.Context, source *wavefront.Source) (*wavefront.Source, error) {
	resp, err := c.client.do(ctx, http.MethodPut, "/api/v2/source/"+source.ID, nil, source)
	if err != nil {
		return nil, err
	}

	return decodeOne[wavefront.Source](resp)
}

// Delete implements wavefront.SourcesClient.Delete.
func (c *SourcesClient) Delete(ctx context.Context, id string) error {
	_, err := c.client.do(ctx, http.MethodDelete, "/api/v2/source/"+id, nil, nil)

	return err
}
