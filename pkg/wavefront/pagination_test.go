package wavefront_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
)

var errConnectionRefused = errors.New("connection refused")

type capturedRequest struct {
	Query url.Values
	Body  map[string]interface{}
}

type scriptedPage struct {
	body string
	code int
	err  error
}

// scriptedExecutor serves a fixed sequence of responses and snapshots each
// request as it arrives, since the pager mutates the request in place.
type scriptedExecutor struct {
	pages    []scriptedPage
	requests []capturedRequest
}

func (e *scriptedExecutor) Execute(ctx context.Context, req *wavefront.PageRequest) ([]byte, int, error) {
	captured := capturedRequest{}

	if req.Query != nil {
		captured.Query = url.Values{}
		for key, values := range req.Query {
			captured.Query[key] = append([]string(nil), values...)
		}
	}

	if req.Body != nil {
		captured.Body = map[string]interface{}{}
		for key, value := range req.Body.Fields() {
			captured.Body[key] = value
		}
	}

	e.requests = append(e.requests, captured)

	call := len(e.requests) - 1
	if call >= len(e.pages) {
		return []byte(`{"status": {"result": "OK", "code": 200}, "response": {"items": [], "moreItems": false}}`), 200, nil
	}

	page := e.pages[call]
	if page.err != nil {
		return nil, 0, page.err
	}

	return []byte(page.body), page.code, nil
}

type capturedWarning struct {
	Message string
	Fields  map[string]interface{}
}

type recordingLogger struct {
	mu       sync.Mutex
	warnings []capturedWarning
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {}
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  {}
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.warnings = append(l.warnings, capturedWarning{Message: msg, Fields: fields})
}

func offsetPage(ids []string, offset, limit int, more bool) string {
	items := ""
	for i, id := range ids {
		if i > 0 {
			items += ","
		}

		items += `{"id": "` + id + `"}`
	}

	moreItems := "false"
	if more {
		moreItems = "true"
	}

	return `{"status": {"result": "OK", "code": 200}, "response": {` +
		`"items": [` + items + `], ` +
		`"offset": ` + itoa(offset) + `, "limit": ` + itoa(limit) + `, "moreItems": ` + moreItems + `}}`
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	digits := ""
	for n > 0 {
		digits = string(rune('0'+n%10)) + digits
		n /= 10
	}

	return digits
}

func newQueryPager(t *testing.T, exec wavefront.Executor, limit wavefront.Limit) *wavefront.Pager {
	t.Helper()

	pager, err := wavefront.NewPager(exec, &wavefront.PageRequest{
		Method: http.MethodGet,
		Path:   "/api/v2/alert",
		Query:  url.Values{},
	}, wavefront.ModeQuery, limit)
	require.NoError(t, err)

	return pager
}

func TestPager_AllPages(t *testing.T) {
	t.Parallel()

	exec := &scriptedExecutor{pages: []scriptedPage{
		{body: offsetPage([]string{"a", "b"}, 0, 100, true), code: 200},
		{body: offsetPage([]string{"c", "d"}, 100, 100, true), code: 200},
		{body: offsetPage([]string{"e", "f"}, 200, 100, false), code: 200},
	}}

	pager := newQueryPager(t, exec, wavefront.LimitAll())

	items, err := pager.All(context.Background())
	require.NoError(t, err)

	assert.Len(t, items, 6)
	assert.Len(t, exec.requests, 3)

	// The "all" sentinel pins a fixed page size on every request.
	assert.Equal(t, "100", exec.requests[0].Query.Get("limit"))
	assert.Equal(t, "100", exec.requests[2].Query.Get("limit"))

	// Offsets advance by offset+limit from each page.
	assert.Equal(t, "", exec.requests[0].Query.Get("offset"))
	assert.Equal(t, "100", exec.requests[1].Query.Get("offset"))
	assert.Equal(t, "200", exec.requests[2].Query.Get("offset"))

	id, ok := items[5].Get("id").String()
	require.True(t, ok)
	assert.Equal(t, "f", id)
}

func TestPager_FiniteLimitTrims(t *testing.T) {
	t.Parallel()

	exec := &scriptedExecutor{pages: []scriptedPage{
		{body: offsetPage([]string{"a", "b", "c", "d", "e"}, 0, 5, true), code: 200},
		{body: offsetPage([]string{"f", "g", "h", "i", "j"}, 5, 5, true), code: 200},
	}}

	pager := newQueryPager(t, exec, wavefront.LimitN(7))

	items, err := pager.All(context.Background())
	require.NoError(t, err)

	// Ten items span two pages; the surplus past the limit is trimmed and
	// no third request is made.
	assert.Len(t, items, 7)
	assert.Len(t, exec.requests, 2)
	assert.Equal(t, "7", exec.requests[0].Query.Get("limit"))

	id, ok := items[6].Get("id").String()
	require.True(t, ok)
	assert.Equal(t, "g", id)
}

func TestPager_DefensiveHalt(t *testing.T) {
	t.Parallel()

	// moreItems claims another page but no cursor or offset is available.
	exec := &scriptedExecutor{pages: []scriptedPage{
		{body: `{"status": {"result": "OK", "code": 200}, "response": {"items": [{"id": "a"}], "moreItems": true}}`, code: 200},
	}}

	logger := &recordingLogger{}
	pager := newQueryPager(t, exec, wavefront.LimitAll()).WithLogger(logger)

	items, err := pager.All(context.Background())
	require.NoError(t, err)

	assert.Len(t, items, 1)
	assert.Len(t, exec.requests, 1)
	require.Len(t, logger.warnings, 1)
	assert.Contains(t, logger.warnings[0].Message, "pagination halted")
}

func TestPager_ZeroLimitSinglePage(t *testing.T) {
	t.Parallel()

	// Without a limit or the "all" sentinel, one page is fetched even when
	// the server reports more.
	exec := &scriptedExecutor{pages: []scriptedPage{
		{body: offsetPage([]string{"a", "b"}, 0, 100, true), code: 200},
	}}

	pager := newQueryPager(t, exec, wavefront.LimitN(0))

	items, err := pager.All(context.Background())
	require.NoError(t, err)

	assert.Len(t, items, 2)
	require.Len(t, exec.requests, 1)
	assert.Empty(t, exec.requests[0].Query.Get("limit"))
}

func TestPager_CursorPaging(t *testing.T) {
	t.Parallel()

	exec := &scriptedExecutor{pages: []scriptedPage{
		{body: `{"status": {"result": "OK", "code": 200}, "response": {"items": [{"id": "h1"}], "cursor": "h2", "moreItems": true}}`, code: 200},
		{body: `{"status": {"result": "OK", "code": 200}, "response": {"items": [{"id": "h2"}], "moreItems": false}}`, code: 200},
	}}

	pager := newQueryPager(t, exec, wavefront.LimitAll())

	items, err := pager.All(context.Background())
	require.NoError(t, err)

	assert.Len(t, items, 2)
	require.Len(t, exec.requests, 2)
	assert.Equal(t, "h2", exec.requests[1].Query.Get("cursor"))
	assert.Empty(t, exec.requests[1].Query.Get("offset"))
}

func TestPager_BodyMode(t *testing.T) {
	t.Parallel()

	exec := &scriptedExecutor{pages: []scriptedPage{
		{body: offsetPage([]string{"a", "b"}, 0, 100, true), code: 200},
		{body: offsetPage([]string{"c"}, 100, 100, false), code: 200},
	}}

	body := wavefront.NewStructuredBody(map[string]interface{}{
		"query": []interface{}{map[string]interface{}{"key": "name", "value": "cpu"}},
	})

	pager, err := wavefront.NewPager(exec, &wavefront.PageRequest{
		Method:      http.MethodPost,
		Path:        "/api/v2/search/alert",
		Body:        body,
		ContentType: "application/json",
	}, wavefront.ModeBody, wavefront.LimitAll())
	require.NoError(t, err)

	items, err := pager.All(context.Background())
	require.NoError(t, err)

	assert.Len(t, items, 3)
	require.Len(t, exec.requests, 2)

	// Pagination fields ride in the JSON body, not the query string.
	assert.Empty(t, exec.requests[0].Query)
	assert.Equal(t, float64(100), exec.requests[0].Body["limit"])
	assert.NotContains(t, exec.requests[0].Body, "offset")
	assert.Equal(t, float64(100), exec.requests[1].Body["offset"])

	// The caller's own fields survive the rewrite.
	assert.Contains(t, exec.requests[1].Body, "query")
}

func TestPager_BodyCanonicalization(t *testing.T) {
	t.Parallel()

	structured := wavefront.NewStructuredBody(map[string]interface{}{"foo": "bar"})

	serialized, err := wavefront.NewSerializedBody([]byte(`{"foo": "bar"}`))
	require.NoError(t, err)

	// Both input forms converge to the same mapping.
	assert.Equal(t, structured.Fields(), serialized.Fields())

	_, err = wavefront.NewSerializedBody([]byte(`[1, 2, 3]`))
	require.ErrorIs(t, err, wavefront.ErrBodyNotMapping)

	_, err = wavefront.NewSerializedBody([]byte(`not json`))
	require.Error(t, err)
}

func TestPager_TransportErrorAborts(t *testing.T) {
	t.Parallel()

	exec := &scriptedExecutor{pages: []scriptedPage{
		{body: offsetPage([]string{"a", "b"}, 0, 100, true), code: 200},
		{err: errConnectionRefused},
	}}

	pager := newQueryPager(t, exec, wavefront.LimitAll())

	// The first page succeeded but the partial accumulation is discarded.
	items, err := pager.All(context.Background())
	require.ErrorIs(t, err, errConnectionRefused)
	assert.Nil(t, items)
}

func TestPager_APIErrorPage(t *testing.T) {
	t.Parallel()

	exec := &scriptedExecutor{pages: []scriptedPage{
		{body: `{"status": {"result": "ERROR", "message": "forbidden", "code": 403}, "response": {}}`, code: 403},
	}}

	pager := newQueryPager(t, exec, wavefront.LimitAll())

	_, err := pager.All(context.Background())
	require.Error(t, err)
	assert.True(t, wavefront.IsForbidden(err))
}

func TestPager_SingleMode(t *testing.T) {
	t.Parallel()

	// Single mode makes exactly one request no matter what the server says.
	exec := &scriptedExecutor{pages: []scriptedPage{
		{body: offsetPage([]string{"a"}, 0, 100, true), code: 200},
	}}

	pager, err := wavefront.NewPager(exec, &wavefront.PageRequest{
		Method: http.MethodGet,
		Path:   "/api/v2/chart/api",
	}, wavefront.ModeSingle, wavefront.LimitAll())
	require.NoError(t, err)

	items, err := pager.All(context.Background())
	require.NoError(t, err)

	assert.Len(t, items, 1)
	assert.Len(t, exec.requests, 1)
}

func TestPager_ForEach(t *testing.T) {
	t.Parallel()

	exec := &scriptedExecutor{pages: []scriptedPage{
		{body: offsetPage([]string{"a", "b"}, 0, 100, true), code: 200},
		{body: offsetPage([]string{"c"}, 100, 100, false), code: 200},
	}}

	pager := newQueryPager(t, exec, wavefront.LimitAll())

	var ids []string

	err := pager.ForEach(context.Background(), func(item wavefront.Value) error {
		id, _ := item.Get("id").String()
		ids = append(ids, id)

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestPager_ForEachStopsOnError(t *testing.T) {
	t.Parallel()

	exec := &scriptedExecutor{pages: []scriptedPage{
		{body: offsetPage([]string{"a", "b"}, 0, 100, false), code: 200},
	}}

	pager := newQueryPager(t, exec, wavefront.LimitAll())

	errStop := errors.New("stop")
	count := 0

	err := pager.ForEach(context.Background(), func(item wavefront.Value) error {
		count++

		return errStop
	})
	require.ErrorIs(t, err, errStop)
	assert.Equal(t, 1, count)
}

func TestPager_Stream(t *testing.T) {
	t.Parallel()

	exec := &scriptedExecutor{pages: []scriptedPage{
		{body: offsetPage([]string{"a", "b"}, 0, 100, true), code: 200},
		{body: offsetPage([]string{"c"}, 100, 100, false), code: 200},
	}}

	pager := newQueryPager(t, exec, wavefront.LimitAll())

	var pages, items int

	for result := range pager.Stream(context.Background()) {
		require.NoError(t, result.Err)

		pages++
		items += len(result.Items)
	}

	assert.Equal(t, 2, pages)
	assert.Equal(t, 3, items)
}

func TestNewPager_Validation(t *testing.T) {
	t.Parallel()

	_, err := wavefront.NewPager(nil, &wavefront.PageRequest{}, wavefront.ModeQuery, wavefront.LimitAll())
	require.ErrorIs(t, err, wavefront.ErrExecutorRequired)

	_, err = wavefront.NewPager(&scriptedExecutor{}, nil, wavefront.ModeQuery, wavefront.LimitAll())
	require.ErrorIs(t, err, wavefront.ErrRequestRequired)
}
