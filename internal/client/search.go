package client

import (
	"context"
	"net/http"

	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
)

// SearchClient implements wavefront.SearchClient. Search endpoints paginate
// through offset/limit fields embedded in the JSON POST body rather than
// query parameters.
type SearchClient struct {
	client *Client
}

// NewSearchClient creates a new search client.
func NewSearchClient(client *Client) *SearchClient {
	return &SearchClient{client: client}
}

// Search implements wavefront.SearchClient.Search. The body carries the
// search query; pagination fields inside it are managed per page.
func (c *SearchClient) Search(ctx context.Context, entity string, body *wavefront.RequestBody, limit wavefront.Limit) ([]wavefront.Value, error) {
	if entity == "" {
		return nil, wavefront.ErrSearchEntityRequired
	}

	if body == nil {
		body = wavefront.NewStructuredBody(nil)
	}

	req := &wavefront.PageRequest{
		Method:      http.MethodPost,
		Path:        "/api/v2/search/" + entity,
		Body:        body,
		ContentType: "application/json",
	}

	pager, err := wavefront.NewPager(c.client.httpClient, req, wavefront.ModeBody, limit)
	if err != nil {
		return nil, err
	}

	if c.client.logger != nil {
		pager = pager.WithLogger(c.client.logger)
	}

	return pager.All(ctx)
}

// SearchRaw implements wavefront.SearchClient.SearchRaw. The raw payload
// must be a serialized JSON object; it is canonicalized so pagination can
// rewrite its offset field between pages.
func (c *SearchClient) SearchRaw(ctx context.Context, entity string, rawBody []byte, limit wavefront.Limit) ([]wavefront.Value, error) {
	body, err := wavefront.NewSerializedBody(rawBody)
	if err != nil {
		return nil, err
	}

	return c.Search(ctx, entity, body, limit)
}
