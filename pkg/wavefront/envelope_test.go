package wavefront_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
)

func TestParseResponse_Enveloped(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"status": {"result": "OK", "message": "", "code": 200},
		"response": {"items": [{"id": "a"}, {"id": "b"}], "offset": 0, "limit": 100, "moreItems": false}
	}`)

	resp := wavefront.ParseResponse(body, 200)

	assert.True(t, resp.OK())
	assert.Equal(t, "OK", resp.Status.Result)
	assert.Equal(t, 200, resp.Status.Code)
	assert.False(t, resp.MoreItems())
	assert.Len(t, resp.Items(), 2)
}

func TestParseResponse_EmbeddedStatusTrusted(t *testing.T) {
	t.Parallel()

	// The envelope status wins over the transport code.
	body := []byte(`{"status": {"result": "ERROR", "message": "bad query", "code": 400}, "response": {}}`)

	resp := wavefront.ParseResponse(body, 200)

	assert.False(t, resp.OK())
	assert.Equal(t, "ERROR", resp.Status.Result)
	assert.Equal(t, "bad query", resp.Status.Message)
	assert.Equal(t, 400, resp.Status.Code)
}

func TestParseResponse_EmptyBodies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body []byte
	}{
		{name: "nil", body: nil},
		{name: "empty", body: []byte("")},
		{name: "whitespace", body: []byte("  \n ")},
		{name: "empty array", body: []byte("[]")},
		{name: "empty object", body: []byte("{}")},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			resp := wavefront.ParseResponse(testCase.body, 200)

			assert.True(t, resp.OK())

			fields, ok := resp.Response.Map()
			require.True(t, ok)
			assert.Empty(t, fields)
		})
	}
}

func TestParseResponse_NonJSON(t *testing.T) {
	t.Parallel()

	resp := wavefront.ParseResponse([]byte("<html>Bad Gateway</html>"), 502)

	assert.False(t, resp.OK())
	assert.Equal(t, "<html>Bad Gateway</html>", resp.Status.Message)
	assert.Equal(t, 502, resp.Status.Code)

	message, ok := resp.Response.Get("message").String()
	require.True(t, ok)
	assert.Equal(t, "<html>Bad Gateway</html>", message)

	code, ok := resp.Response.Get("code").Int()
	require.True(t, ok)
	assert.Equal(t, 502, code)
}

func TestParseResponse_BareArray(t *testing.T) {
	t.Parallel()

	resp := wavefront.ParseResponse([]byte(`[{"identifier": "user@example.com"}, {"identifier": "admin@example.com"}]`), 200)

	assert.True(t, resp.OK())

	items := resp.Items()
	require.Len(t, items, 2)

	identifier, ok := items[0].Get("identifier").String()
	require.True(t, ok)
	assert.Equal(t, "user@example.com", identifier)
}

func TestParseResponse_ObjectWithoutStatus(t *testing.T) {
	t.Parallel()

	resp := wavefront.ParseResponse([]byte(`{"error": "not found"}`), 404)

	assert.False(t, resp.OK())
	assert.Equal(t, wavefront.StatusResultError, resp.Status.Result)
	assert.Equal(t, 404, resp.Status.Code)

	message, ok := resp.Response.Get("error").String()
	require.True(t, ok)
	assert.Equal(t, "not found", message)
}

func TestParseResponse_StatusFromCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		code   int
		wantOK bool
	}{
		{name: "200", code: 200, wantOK: true},
		{name: "204", code: 204, wantOK: true},
		{name: "299", code: 299, wantOK: true},
		{name: "199", code: 199, wantOK: false},
		{name: "301", code: 301, wantOK: false},
		{name: "404", code: 404, wantOK: false},
		{name: "500", code: 500, wantOK: false},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			resp := wavefront.ParseResponse([]byte(`{"id": "x"}`), testCase.code)
			assert.Equal(t, testCase.wantOK, resp.OK())
		})
	}
}

func TestParseResponse_NeverFails(t *testing.T) {
	t.Parallel()

	bodies := [][]byte{
		nil,
		[]byte("garbage%%%"),
		[]byte(`{"status": "not-an-object"}`),
		[]byte(`42`),
		[]byte(`"a string"`),
		[]byte(`null`),
		[]byte(`[1, 2, 3]`),
	}

	for _, body := range bodies {
		resp := wavefront.ParseResponse(body, 200)
		require.NotNil(t, resp)
	}
}

func TestParseResponse_Idempotent(t *testing.T) {
	t.Parallel()

	body := []byte(`{"status": {"result": "OK", "message": "", "code": 200}, "response": {"items": [1, 2]}}`)

	first := wavefront.ParseResponse(body, 200)
	second := wavefront.ParseResponse(body, 200)

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Items(), second.Items())
}

func TestAPIResponse_MoreItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want bool
	}{
		{name: "true", body: `{"status": {"result": "OK", "code": 200}, "response": {"moreItems": true}}`, want: true},
		{name: "false", body: `{"status": {"result": "OK", "code": 200}, "response": {"moreItems": false}}`, want: false},
		{name: "absent", body: `{"status": {"result": "OK", "code": 200}, "response": {}}`, want: false},
		{name: "null", body: `{"status": {"result": "OK", "code": 200}, "response": {"moreItems": null}}`, want: false},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			resp := wavefront.ParseResponse([]byte(testCase.body), 200)
			assert.Equal(t, testCase.want, resp.MoreItems())
		})
	}
}

func TestAPIResponse_NextItem_Cursor(t *testing.T) {
	t.Parallel()

	body := `{"status": {"result": "OK", "code": 200}, "response": {"cursor": "host-42", "moreItems": true}}`
	resp := wavefront.ParseResponse([]byte(body), 200)

	next, ok := resp.NextItem()
	require.True(t, ok)

	cursor, ok := next.String()
	require.True(t, ok)
	assert.Equal(t, "host-42", cursor)
}

func TestAPIResponse_NextItem_Offset(t *testing.T) {
	t.Parallel()

	body := `{"status": {"result": "OK", "code": 200}, "response": {"offset": 100, "limit": 50, "moreItems": true}}`
	resp := wavefront.ParseResponse([]byte(body), 200)

	next, ok := resp.NextItem()
	require.True(t, ok)

	offset, ok := next.Int()
	require.True(t, ok)
	assert.Equal(t, 150, offset)
}

func TestAPIResponse_NextItem_Absent(t *testing.T) {
	t.Parallel()

	body := `{"status": {"result": "OK", "code": 200}, "response": {"moreItems": true}}`
	resp := wavefront.ParseResponse([]byte(body), 200)

	_, ok := resp.NextItem()
	assert.False(t, ok)
}

func TestAPIResponse_Items_SingleObject(t *testing.T) {
	t.Parallel()

	body := `{"status": {"result": "OK", "code": 200}, "response": {"id": "alert-1", "name": "cpu"}}`
	resp := wavefront.ParseResponse([]byte(body), 200)

	items := resp.Items()
	require.Len(t, items, 1)

	id, ok := items[0].Get("id").String()
	require.True(t, ok)
	assert.Equal(t, "alert-1", id)
}

func TestAPIResponse_Err(t *testing.T) {
	t.Parallel()

	okResp := wavefront.ParseResponse([]byte(`{}`), 200)
	require.NoError(t, okResp.Err())

	errResp := wavefront.ParseResponse([]byte(`{"status": {"result": "ERROR", "message": "no such alert", "code": 404}, "response": {}}`), 404)

	err := errResp.Err()
	require.Error(t, err)
	assert.True(t, wavefront.IsNotFound(err))
	assert.Contains(t, err.Error(), "no such alert")
}
