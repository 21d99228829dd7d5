package client

import (
	"context"
	"net/http"

	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
)

// UsersClient implements wavefront.UsersClient. The user list endpoint is
// not paginated: it returns a bare JSON array instead of an items wrapper.
type UsersClient struct {
	client *Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(client *Client) *UsersClient {
	return &UsersClient{client: client}
}

// List implements wavefront.UsersClient.List.
func (c *UsersClient) List(ctx context.Context) ([]wavefront.User, error) {
	resp, err := c.client.do(ctx, http.MethodGet, "/api/v2/user", nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeItems[wavefront.User](resp.Items())
}

// Get implements wavefront.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, id string) (*wavefront.User, error) {
	resp, err := c.client.do(ctx, http.MethodGet, "/api/v2/user/"+id, nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeOne[wavefront.User](resp)
}

// Delete implements wavefront.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, id string) error {
	_, err := c.client.do(ctx, http.MethodDelete, "/api/v2/user/"+id, nil, nil)

	return err
}
