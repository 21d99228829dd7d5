package client

import (
	"context"
	"net/http"

	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
)

// EventsClient implements wavefront.EventsClient. The event list endpoint
// pages by cursor within a required time window.
type EventsClient struct {
	client *Client
}

// NewEventsClient creates a new events client.
func NewEventsClient(client *Client) *EventsClient {
	return &EventsClient{client: client}
}

// List implements wavefront.EventsClient.List.
func (c *EventsClient) List(ctx context.Context, opts *wavefront.EventListOptions) ([]wavefront.Event, error) {
	req := &wavefront.PageRequest{
		Method: http.MethodGet,
		Path:   "/api/v2/event",
		Query:  opts.ToValues(),
	}

	return paged[wavefront.Event](ctx, c.client, req, wavefront.ModeQuery, opts.PageLimit())
}

// Get implements wavefront.EventsClient.Get.
func (c *EventsClient) Get(ctx context.Context, id string) (*wavefront.Event, error) {
	resp, err := c.client.do(ctx, http.MethodGet, "/api/v2/event/"+id, nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeOne[wavefront.Event](resp)
}

// Create implements wavefront.EventsClient.Create. An event without an end
// time stays open until closed.
func (c *EventsClient) Create(ctx context.Context, event *wavefront.Event) (*wavefront.Event, error) {
	resp, err := c.client.do(ctx, http.MethodPost, "/api/v2/event", nil, event)
	if err != nil {
		return nil, err
	}

	return decodeOne[wavefront.Event](resp)
}

// Close implements wavefront.EventsClient.Close, ending an open event now.
func (c *EventsClient) Close(ctx context.Context, id string) (*wavefront.Event, error) {
	resp, err := c.client.do(ctx, http.MethodPost, "/api/v2/event/"+id+"/close", nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeOne[wavefront.Event](resp)
}

// Delete implements wavefront.EventsClient.Delete.
func (c *EventsClient) Delete(ctx context.Context, id string) error {
	_, err := c.client.do(ctx, http.MethodDelete, "/api/v2/event/"+id, nil, nil)

	return err
}
