package wavefront

import (
	"bytes"
	"encoding/json"
)

// Status result values used by the API envelope.
const (
	StatusResultOK    = "OK"
	StatusResultError = "ERROR"
)

// Status is the structured status block of an API envelope.
type Status struct {
	Result  string `json:"result"  yaml:"result"`
	Message string `json:"message" yaml:"message"`
	Code    int    `json:"code"    yaml:"code"`
}

// APIResponse is the normalized form of one HTTP exchange with the API.
// It is constructed once from the raw body and status code and never
// mutated afterwards.
type APIResponse struct {
	Status   Status
	Response Value
}

// envelope mirrors the wire format of a well-formed API response.
type envelope struct {
	Status   *Status         `json:"status"`
	Response json.RawMessage `json:"response"`
}

// ParseResponse normalizes a raw response body and HTTP status code into an
// APIResponse. It never fails: malformed, empty and non-JSON bodies degrade
// to a best-effort response rather than an error.
func ParseResponse(body []byte, code int) *APIResponse {
	trimmed := bytes.TrimSpace(body)

	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("[]")) || bytes.Equal(trimmed, []byte("{}")) {
		return &APIResponse{
			Status:   statusFromCode(code),
			Response: ValueOf(map[string]interface{}{}),
		}
	}

	var parsed interface{}

	err := json.Unmarshal(trimmed, &parsed)
	if err != nil {
		raw := string(body)
		status := statusFromCode(code)
		status.Message = raw

		return &APIResponse{
			Status: status,
			Response: ValueOf(map[string]interface{}{
				"message": raw,
				"code":    float64(code),
			}),
		}
	}

	obj, isObject := parsed.(map[string]interface{})
	if !isObject {
		// Bare scalar or list: wrap it with a synthesized status.
		return &APIResponse{
			Status:   statusFromCode(code),
			Response: ValueOf(parsed),
		}
	}

	if _, hasStatus := obj["status"]; hasStatus {
		return parseEnveloped(trimmed, obj, code)
	}

	// A plain JSON object without a status key, e.g. an error document from
	// an intermediate proxy. Synthesize the status and keep the whole object.
	return &APIResponse{
		Status:   statusFromCode(code),
		Response: ValueOf(obj),
	}
}

// parseEnveloped handles a body that carries the {status, response} wrapper.
// The embedded status is trusted over the transport-level code.
func parseEnveloped(raw []byte, obj map[string]interface{}, code int) *APIResponse {
	var env envelope

	err := json.Unmarshal(raw, &env)
	if err != nil || env.Status == nil {
		// The status key exists but is not a usable status object.
		status := statusFromCode(code)

		return &APIResponse{Status: status, Response: ValueOf(obj)}
	}

	response := ValueOf(obj)
	if inner, ok := obj["response"]; ok {
		response = ValueOf(inner)
	}

	return &APIResponse{Status: *env.Status, Response: response}
}

func statusFromCode(code int) Status {
	result := StatusResultError
	if code >= 200 && code < 300 {
		result = StatusResultOK
	}

	return Status{Result: result, Message: "", Code: code}
}

// OK reports whether the HTTP status code is in the 2xx range.
func (r *APIResponse) OK() bool {
	return r.Status.Code >= 200 && r.Status.Code < 300
}

// MoreItems reports whether the server indicated additional pages.
func (r *APIResponse) MoreItems() bool {
	return r.Response.Get("moreItems").Truthy()
}

// NextItem returns the cursor or offset for the next page. Cursor-paged
// responses carry an explicit cursor; offset-paged responses advance by
// offset+limit. The second return value is false when neither is available.
func (r *APIResponse) NextItem() (Value, bool) {
	cursor := r.Response.Get("cursor")
	if cursor.Present() && !cursor.IsNull() {
		return cursor, true
	}

	offset, offsetOK := r.Response.Get("offset").Int()
	limit, limitOK := r.Response.Get("limit").Int()

	if offsetOK && limitOK {
		return ValueOf(float64(offset + limit)), true
	}

	return AbsentValue(), false
}

// Items returns the page's item list: response.items when the wrapper is
// present, the elements themselves when the response is a bare array, and a
// single-element list otherwise.
func (r *APIResponse) Items() []Value {
	if items, ok := r.Response.Get("items").Array(); ok {
		return items
	}

	if items, ok := r.Response.Array(); ok {
		return items
	}

	if !r.Response.Present() {
		return nil
	}

	return []Value{r.Response}
}

// Err returns a typed *APIError when the response is not OK, nil otherwise.
// Checking OK explicitly remains the caller's choice; Err is the raising
// convenience for code that wants errors instead of predicates.
func (r *APIResponse) Err() error {
	if r.OK() {
		return nil
	}

	return &APIError{Status: r.Status}
}
