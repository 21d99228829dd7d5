package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
)

// AlertsClient implements wavefront.AlertsClient. Alerts page by
// offset/limit query parameters.
type AlertsClient struct {
	client *Client
}

// NewAlertsClient creates a new alerts client.
func NewAlertsClient(client *Client) *AlertsClient {
	return &AlertsClient{client: client}
}

// List implements wavefront.AlertsClient.List.
func (c *AlertsClient) List(ctx context.Context, opts *wavefront.ListOptions) ([]wavefront.Alert, error) {
	req := &wavefront.PageRequest{
		Method: http.MethodGet,
		Path:   "/api/v2/alert",
		Query:  opts.ToValues(),
	}

	return paged[wavefront.Alert](ctx, c.client, req, wavefront.ModeQuery, opts.PageLimit())
}

// Get implements wavefront.AlertsClient.Get.
func (c *AlertsClient) Get(ctx context.Context, id string) (*wavefront.Alert, error) {
	resp, err := c.client.do(ctx, http.MethodGet, "/api/v2/alert/"+id, nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeOne[wavefront.Alert](resp)
}

// Create implements wavefront.AlertsClient.Create.
func (c *AlertsClient) Create(ctx context.Context, alert *wavefront.Alert) (*wavefront.Alert, error) {
	resp, err := c.client.do(ctx, http.MethodPost, "/api/v2/alert", nil, alert)
	if err != nil {
		return nil, err
	}

	return decodeOne[wavefront.Alert](resp)
}

// Update implements wavefront.AlertsClient.Update.
func (c *AlertsClient) Update(ctx context.Context, alert *wavefront.Alert) (*wavefront.Alert, error) {
	resp, err := c.client.do(ctx, http.MethodPut, "/api/v2/alert/"+alert.ID, nil, alert)
	if err != nil {
		return nil, err
	}

	return decodeOne[wavefront.Alert](resp)
}

// Delete implements wavefront.AlertsClient.Delete.
func (c *AlertsClient) Delete(ctx context.Context, id string) error {
	_, err := c.client.do(ctx, http.MethodDelete, "/api/v2/alert/"+id, nil, nil)

	return err
}

// Snooze implements wavefront.AlertsClient.Snooze. A zero duration snoozes
// the alert indefinitely.
func (c *AlertsClient) Snooze(ctx context.Context, id string, duration time.Duration) (*wavefront.Alert, error) {
	query := url.Values{}
	if duration > 0 {
		query.Set("seconds", strconv.FormatInt(int64(duration.Seconds()), 10))
	}

	resp, err := c.client.do(ctx, http.MethodPost, "/api/v2/alert/"+id+"/snooze", query, nil)
	if err != nil {
		return nil, err
	}

	return decodeOne[wavefront.Alert](resp)
}

// Unsnooze implements wavefront.AlertsClient.Unsnooze.
func (c *AlertsClient) Unsnooze(ctx context.Context, id string) (*wavefront.Alert, error) {
	resp, err := c.client.do(ctx, http.MethodPost, "/api/v2/alert/"+id+"/unsnooze", nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeOne[wavefront.Alert](resp)
}

// Summary implements wavefront.AlertsClient.Summary, returning alert counts
// keyed by state.
func (c *AlertsClient) Summary(ctx context.Context) (map[string]int, error) {
	resp, err := c.client.do(ctx, http.MethodGet, "/api/v2/alert/summary", nil, nil)
	if err != nil {
		return nil, err
	}

	summary := map[string]int{}

	err = resp.Response.Decode(&summary)
	if err != nil {
		return nil, err
	}

	return summary, nil
}
