package client

import (
	"context"
	"net/http"

	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
)

// MessagesClient implements wavefront.MessagesClient.
type MessagesClient struct {
	client *Client
}

// NewMessagesClient creates a new messages client.
func NewMessagesClient(client *Client) *MessagesClient {
	return &MessagesClient{client: client}
}

// List implements wavefront.MessagesClient.List.
func (c *MessagesClient) List(ctx context.Context, opts *wavefront.ListOptions) ([]wavefront.Message, error) {
	req := &wavefront.PageRequest{
		Method: http.MethodGet,
		Path:   "/api/v2/message",
		Query:  opts.ToValues(),
	}

	return paged[wavefront.Message](ctx, c.client, req, wavefront.ModeQuery, opts.PageLimit())
}

// MarkRead implements wavefront.MessagesClient.MarkRead.
func (c *MessagesClient) MarkRead(ctx context.Context, id string) (*wavefront.Message, error) {
	resp, err := c.client.do(ctx, http.MethodPost, "/api/v2/message/"+id+"/read", nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeOne[wavefront.Message](resp)
}
