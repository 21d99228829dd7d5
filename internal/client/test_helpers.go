package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
)

// NewTestClient creates a client pointed at the given test server URL.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&wavefront.Config{Endpoint: baseURL, Token: "test-token"})
	require.NoError(t, err)

	return client
}

// Envelope wraps a payload in the standard status envelope.
func Envelope(result string, code int, response interface{}) map[string]interface{} {
	return map[string]interface{}{
		"status": map[string]interface{}{
			"result": result,
			"code":   code,
		},
		"response": response,
	}
}

// ErrorEnvelope builds an error envelope with a message.
func ErrorEnvelope(code int, message string) map[string]interface{} {
	return map[string]interface{}{
		"status": map[string]interface{}{
			"result":  "ERROR",
			"message": message,
			"code":    code,
		},
	}
}

// ItemsPage builds one offset-paged list envelope.
func ItemsPage(items interface{}, offset, limit int, moreItems bool) map[string]interface{} {
	return Envelope("OK", http.StatusOK, map[string]interface{}{
		"items":     items,
		"offset":    offset,
		"limit":     limit,
		"moreItems": moreItems,
	})
}

// CursorPage builds one cursor-paged list envelope. An empty cursor omits
// the field, the shape a final page has.
func CursorPage(items interface{}, cursor string, moreItems bool) map[string]interface{} {
	response := map[string]interface{}{
		"items":     items,
		"moreItems": moreItems,
	}
	if cursor != "" {
		response["cursor"] = cursor
	}

	return Envelope("OK", http.StatusOK, response)
}

// WriteJSON encodes v onto a test server response.
func WriteJSON(t *testing.T, writer http.ResponseWriter, statusCode int, v interface{}) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(statusCode)

	err := json.NewEncoder(writer).Encode(v)
	require.NoError(t, err)
}

// TestGetOperation represents a generic get operation test case.
type TestGetOperation[TResponse any] struct {
	Name         string
	ID           string
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrMessage   string
}

// RunGetTests runs a series of get operation tests.
func RunGetTests[TResponse any](
	t *testing.T,
	tests []TestGetOperation[TResponse],
	getFunc func(*Client) func(context.Context, string) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodGet, request.Method)
				assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
				WriteJSON(t, writer, testCase.StatusCode, testCase.Response)
			}))
			defer server.Close()

			client := NewTestClient(t, server.URL)

			getFn := getFunc(client)
			result, err := getFn(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// TestDeleteOperation represents a generic delete operation test case.
type TestDeleteOperation struct {
	Name         string
	ID           string
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrMessage   string
}

// RunDeleteTests runs a series of delete operation tests.
func RunDeleteTests(
	t *testing.T,
	tests []TestDeleteOperation,
	deleteFunc func(*Client) func(context.Context, string) error,
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodDelete, request.Method)
				WriteJSON(t, writer, testCase.StatusCode, testCase.Response)
			}))
			defer server.Close()

			client := NewTestClient(t, server.URL)

			deleteFn := deleteFunc(client)
			err := deleteFn(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}
