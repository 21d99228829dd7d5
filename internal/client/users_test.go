package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavefront-tools/wavefront-go/internal/client"
	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
)

// The user list endpoint returns a bare JSON array in the response field
// rather than an items wrapper.
func TestUsersClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v2/user", request.URL.Path)
		assert.Equal(t, http.MethodGet, request.Method)

		users := []wavefront.User{
			{Identifier: "alice@example.com", Groups: []string{"agent_management"}},
			{Identifier: "bob@example.com"},
		}
		client.WriteJSON(t, writer, http.StatusOK, client.Envelope("OK", http.StatusOK, users))
	}))
	defer server.Close()

	c := client.NewTestClient(t, server.URL)

	users, err := c.Users().List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice@example.com", users[0].Identifier)
	assert.Equal(t, []string{"agent_management"}, users[0].Groups)
}

func TestUsersClient_List_Empty(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		client.WriteJSON(t, writer, http.StatusOK, client.Envelope("OK", http.StatusOK, []wavefront.User{}))
	}))
	defer server.Close()

	c := client.NewTestClient(t, server.URL)

	users, err := c.Users().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUsersClient_Get(t *testing.T) {
	t.Parallel()

	tests := []client.TestGetOperation[wavefront.User]{
		{
			Name:         "successful get",
			ID:           "alice@example.com",
			ExpectedPath: "/api/v2/user/alice@example.com",
			StatusCode:   http.StatusOK,
			Response: client.Envelope("OK", http.StatusOK, wavefront.User{
				Identifier: "alice@example.com",
				Customer:   "example",
			}),
		},
		{
			Name:         "user not found",
			ID:           "nobody@example.com",
			ExpectedPath: "/api/v2/user/nobody@example.com",
			StatusCode:   http.StatusNotFound,
			Response:     client.ErrorEnvelope(http.StatusNotFound, "user does not exist"),
			WantErr:      true,
			ErrMessage:   "user does not exist",
		},
	}

	client.RunGetTests(t, tests, func(c *client.Client) func(context.Context, string) (*wavefront.User, error) {
		return c.Users().Get
	})
}

func TestUsersClient_Delete(t *testing.T) {
	t.Parallel()

	tests := []client.TestDeleteOperation{
		{
			Name:         "successful delete",
			ID:           "bob@example.com",
			ExpectedPath: "/api/v2/user/bob@example.com",
			StatusCode:   http.StatusOK,
			Response:     client.Envelope("OK", http.StatusOK, nil),
		},
	}

	client.RunDeleteTests(t, tests, func(c *client.Client) func(context.Context, string) error {
		return c.Users().Delete
	})
}
