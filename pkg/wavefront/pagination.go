package wavefront

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/wavefront-tools/wavefront-go/internal/constants"
)

// Executor performs a single HTTP exchange. Implementations return the raw
// body and status code for any HTTP response, including 4xx/5xx; an error
// return is reserved for transport-level failures (DNS, connection refused,
// TLS, timeout).
type Executor interface {
	Execute(ctx context.Context, req *PageRequest) (body []byte, statusCode int, err error)
}

// PageMode selects where pagination parameters live for an endpoint.
type PageMode int

const (
	// ModeSingle issues exactly one request, no paging.
	ModeSingle PageMode = iota

	// ModeQuery pages via offset/cursor query string parameters (GET).
	ModeQuery

	// ModeBody pages via offset/cursor fields in a JSON request body (POST).
	ModeBody
)

// Limit expresses how many items the caller wants. The zero value means
// "whatever one page returns".
type Limit struct {
	all bool
	n   int
}

// LimitAll keeps paging until the server reports no more items.
func LimitAll() Limit {
	return Limit{all: true}
}

// LimitN stops once n items have been accumulated. n <= 0 means a single
// page.
func LimitN(n int) Limit {
	return Limit{n: n}
}

// All reports whether the limit is the "everything" sentinel.
func (l Limit) All() bool {
	return l.all
}

// N returns the finite item target, 0 when unset or All.
func (l Limit) N() int {
	if l.all {
		return 0
	}

	return l.n
}

// PageRequest describes one logical, possibly multi-page API call. The
// Pager owns it for the duration of the call and rewrites the offset or
// cursor field between pages; build a fresh one per call.
type PageRequest struct {
	Method      string
	Path        string
	Query       url.Values
	Body        *RequestBody
	ContentType string
}

// RequestBody is a JSON request body in one of two input forms: already a
// mapping, or a previously serialized string. Both converge to the same
// mapping representation so pagination logic is written once.
type RequestBody struct {
	fields map[string]interface{}
}

// NewStructuredBody builds a body from a mapping.
func NewStructuredBody(fields map[string]interface{}) *RequestBody {
	if fields == nil {
		fields = map[string]interface{}{}
	}

	return &RequestBody{fields: fields}
}

// NewSerializedBody builds a body from raw serialized JSON. It fails when
// the payload is not a JSON object, since pagination has to rewrite fields
// inside it.
func NewSerializedBody(raw []byte) (*RequestBody, error) {
	var parsed interface{}

	err := json.Unmarshal(raw, &parsed)
	if err != nil {
		return nil, fmt.Errorf("parsing request body: %w", err)
	}

	fields, ok := parsed.(map[string]interface{})
	if !ok {
		return nil, ErrBodyNotMapping
	}

	return &RequestBody{fields: fields}, nil
}

// Fields returns the canonical mapping form.
func (b *RequestBody) Fields() map[string]interface{} {
	return b.fields
}

// Set rewrites one field of the body.
func (b *RequestBody) Set(key string, value interface{}) {
	b.fields[key] = value
}

// Bytes serializes the canonical mapping for transmission.
func (b *RequestBody) Bytes() ([]byte, error) {
	raw, err := json.Marshal(b.fields)
	if err != nil {
		return nil, fmt.Errorf("serializing request body: %w", err)
	}

	return raw, nil
}

// PageResult is one page delivered by Pager.Stream.
type PageResult struct {
	Items    []Value
	Response *APIResponse
	Err      error
}

// Pager walks a paginated endpoint on behalf of the caller, re-issuing
// requests until the server reports no more items or the caller's limit is
// reached. Each call to All, ForEach or Stream owns its accumulation state;
// page fetches are strictly sequential.
type Pager struct {
	exec   Executor
	req    *PageRequest
	mode   PageMode
	limit  Limit
	logger Logger
}

// NewPager creates a pager for one logical call.
func NewPager(exec Executor, req *PageRequest, mode PageMode, limit Limit) (*Pager, error) {
	if exec == nil {
		return nil, ErrExecutorRequired
	}

	if req == nil {
		return nil, ErrRequestRequired
	}

	return &Pager{exec: exec, req: req, mode: mode, limit: limit}, nil
}

// WithLogger attaches a logger for protocol anomaly reporting.
func (p *Pager) WithLogger(logger Logger) *Pager {
	p.logger = logger

	return p
}

// All accumulates every page's items in fetch order. A transport failure
// aborts immediately and discards the partial accumulation; a non-2xx
// envelope is surfaced as *APIError. When the server claims more items but
// supplies no next cursor the walk halts defensively with what was
// gathered.
func (p *Pager) All(ctx context.Context) ([]Value, error) {
	var items []Value

	err := p.walk(ctx, func(page []Value, _ *APIResponse) {
		items = append(items, page...)
	})
	if err != nil {
		return nil, err
	}

	if n := p.limit.N(); n > 0 && len(items) > n {
		items = items[:n]
	}

	return items, nil
}

// ForEach invokes fn for every item across all pages. Returning an error
// from fn stops the walk.
func (p *Pager) ForEach(ctx context.Context, fn func(Value) error) error {
	var fnErr error

	err := p.walk(ctx, func(page []Value, _ *APIResponse) {
		if fnErr != nil {
			return
		}

		for _, item := range page {
			if err := fn(item); err != nil {
				fnErr = err

				return
			}
		}
	})
	if err != nil {
		return err
	}

	return fnErr
}

// Stream delivers pages over a channel as they are fetched. The channel is
// closed after the final page or the first error.
func (p *Pager) Stream(ctx context.Context) <-chan PageResult {
	results := make(chan PageResult, constants.SmallBufferSize)

	go func() {
		defer close(results)

		err := p.walk(ctx, func(page []Value, resp *APIResponse) {
			results <- PageResult{Items: page, Response: resp}
		})
		if err != nil {
			results <- PageResult{Err: err}
		}
	}()

	return results
}

// walk is the shared page loop. onPage sees every page in fetch order.
func (p *Pager) walk(ctx context.Context, onPage func([]Value, *APIResponse)) error {
	p.normalizeLimit()

	seen := 0

	for {
		body, statusCode, err := p.exec.Execute(ctx, p.req)
		if err != nil {
			return fmt.Errorf("executing page request: %w", err)
		}

		resp := ParseResponse(body, statusCode)
		if err := resp.Err(); err != nil {
			return err
		}

		page := resp.Items()
		onPage(page, resp)
		seen += len(page)

		if p.mode == ModeSingle {
			return nil
		}

		// A zero limit asks for exactly one page.
		if !p.limit.All() && p.limit.N() <= 0 {
			return nil
		}

		if n := p.limit.N(); n > 0 && seen >= n {
			return nil
		}

		if !resp.MoreItems() {
			return nil
		}

		next, ok := resp.NextItem()
		if !ok {
			// Server protocol violation: moreItems without a next cursor.
			// Halt with what has been accumulated instead of looping.
			if p.logger != nil {
				p.logger.Warn("pagination halted: moreItems set without cursor or offset", map[string]interface{}{
					"path":  p.req.Path,
					"items": seen,
				})
			}

			return nil
		}

		err = p.advance(resp, next)
		if err != nil {
			return err
		}
	}
}

// normalizeLimit applies the "all" sentinel: a fixed page size per request
// while the true target stays unbounded. Finite limits are passed through
// as the per-request limit.
func (p *Pager) normalizeLimit() {
	if p.mode == ModeSingle {
		return
	}

	perPage := 0

	switch {
	case p.limit.All():
		perPage = constants.PaginationPageSize
	case p.limit.N() > 0:
		perPage = p.limit.N()
	}

	if perPage == 0 {
		return
	}

	p.setParam("limit", float64(perPage))
}

// advance rewrites the request's cursor or offset field from the previous
// page's next item.
func (p *Pager) advance(resp *APIResponse, next Value) error {
	key := "offset"
	if cursor := resp.Response.Get("cursor"); cursor.Present() && !cursor.IsNull() {
		key = "cursor"
	}

	p.setParam(key, next.Interface())

	return nil
}

// setParam writes a pagination parameter into the query string or the JSON
// body depending on the pager mode.
func (p *Pager) setParam(key string, value interface{}) {
	if p.mode == ModeBody {
		if p.req.Body == nil {
			p.req.Body = NewStructuredBody(nil)
		}

		p.req.Body.Set(key, value)

		return
	}

	if p.req.Query == nil {
		p.req.Query = url.Values{}
	}

	p.req.Query.Set(key, queryString(value))
}

func queryString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
