package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavefront-tools/wavefront-go/internal/client"
	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
)

func TestSourcesClient_List_CursorPaging(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v2/source", request.URL.Path)

		switch request.URL.Query().Get("cursor") {
		case "":
			page := client.CursorPage([]wavefront.Source{
				{ID: "web-01"},
				{ID: "web-02"},
			}, "web-03", true)
			client.WriteJSON(t, writer, http.StatusOK, page)
		case "web-03":
			page := client.CursorPage([]wavefront.Source{
				{ID: "web-03"},
			}, "", false)
			client.WriteJSON(t, writer, http.StatusOK, page)
		default:
			t.Errorf("unexpected cursor %q", request.URL.Query().Get("cursor"))
		}
	}))
	defer server.Close()

	c := client.NewTestClient(t, server.URL)

	sources, err := c.Sources().List(context.Background(), &wavefront.CursorListOptions{All: true})
	require.NoError(t, err)
	require.Len(t, sources, 3)
	assert.Equal(t, "web-01", sources[0].ID)
	assert.Equal(t, "web-03", sources[2].ID)
}

func TestSourcesClient_List_StartCursor(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "db-01", request.URL.Query().Get("cursor"))

		page := client.CursorPage([]wavefront.Source{{ID: "db-01"}}, "", false)
		client.WriteJSON(t, writer, http.StatusOK, page)
	}))
	defer server.Close()

	c := client.NewTestClient(t, server.URL)

	sources, err := c.Sources().List(context.Background(), &wavefront.CursorListOptions{Cursor: "db-01", All: true})
	require.NoError(t, err)
	assert.Len(t, sources, 1)
}

func TestSourcesClient_Get(t *testing.T) {
	t.Parallel()

	tests := []client.TestGetOperation[wavefront.Source]{
		{
			Name:         "successful get",
			ID:           "web-01",
			ExpectedPath: "/api/v2/source/web-01",
			StatusCode:   http.StatusOK,
			Response: client.Envelope("OK", http.StatusOK, wavefront.Source{
				ID:   "web-01",
				Tags: map[string]bool{"env.production": true},
			}),
		},
	}

	client.RunGetTests(t, tests, func(c *client.Client) func(context.Context, string) (*wavefront.Source, error) {
		return c.Sources().Get
	})
}

func TestSourcesClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v2/source/web-01", request.URL.Path)
		assert.Equal(t, http.MethodPut, request.Method)

		var body wavefront.Source

		err := json.NewDecoder(request.Body).Decode(&body)
		require.NoError(t, err)
		assert.True(t, body.Hidden)

		client.WriteJSON(t, writer, http.StatusOK, client.Envelope("OK", http.StatusOK, body))
	}))
	defer server.Close()

	c := client.NewTestClient(t, server.URL)

	updated, err := c.Sources().Update(context.Background(), &wavefront.Source{ID: "web-01", Hidden: true})
	require.NoError(t, err)
	assert.True(t, updated.Hidden)
}

func TestSourcesClient_Delete(t *testing.T) {
	t.Parallel()

	tests := []client.TestDeleteOperation{
		{
			Name:         "successful delete",
			ID:           "web-01",
			ExpectedPath: "/api/v2/source/web-01",
			StatusCode:   http.StatusOK,
			Response:     client.Envelope("OK", http.StatusOK, nil),
		},
	}

	client.RunDeleteTests(t, tests, func(c *client.Client) func(context.Context, string) error {
		return c.Sources().Delete
	})
}
