package wavefront

import (
	"net/url"
	"strconv"
	"time"
)

// paramBuilder composes query strings from option structs. Zero values are
// treated as unset and omitted.
type paramBuilder struct {
	values url.Values
}

func newParamBuilder() *paramBuilder {
	return &paramBuilder{values: url.Values{}}
}

func (b *paramBuilder) setString(key, value string) *paramBuilder {
	if value != "" {
		b.values.Set(key, value)
	}

	return b
}

func (b *paramBuilder) setInt(key string, value int) *paramBuilder {
	if value != 0 {
		b.values.Set(key, strconv.Itoa(value))
	}

	return b
}

func (b *paramBuilder) setBool(key string, value bool) *paramBuilder {
	if value {
		b.values.Set(key, "true")
	}

	return b
}

func (b *paramBuilder) setTime(key string, value time.Time) *paramBuilder {
	if !value.IsZero() {
		b.values.Set(key, strconv.FormatInt(value.UnixMilli(), 10))
	}

	return b
}

func (b *paramBuilder) build() url.Values {
	return b.values
}

// ListOptions configures offset-paged list calls such as alerts and
// messages. Offset and Limit map directly to the API's query parameters;
// All requests every page regardless of Limit.
type ListOptions struct {
	Offset int
	Limit  int
	All    bool
}

// ToValues renders the options as query parameters.
func (o *ListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	return newParamBuilder().
		setInt("offset", o.Offset).
		setInt("limit", o.Limit).
		build()
}

// PageLimit returns the pagination limit these options express.
func (o *ListOptions) PageLimit() Limit {
	if o == nil {
		return LimitN(0)
	}

	if o.All {
		return LimitAll()
	}

	return LimitN(o.Limit)
}

// CursorListOptions configures cursor-paged list calls such as sources.
type CursorListOptions struct {
	Cursor string
	Limit  int
	All    bool
}

// ToValues renders the options as query parameters.
func (o *CursorListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	return newParamBuilder().
		setString("cursor", o.Cursor).
		setInt("limit", o.Limit).
		build()
}

// PageLimit returns the pagination limit these options express.
func (o *CursorListOptions) PageLimit() Limit {
	if o == nil {
		return LimitN(0)
	}

	if o.All {
		return LimitAll()
	}

	return LimitN(o.Limit)
}

// EventListOptions configures the cursor-paged event list call. The API
// requires a time window; Earliest and Latest bound the events returned.
type EventListOptions struct {
	Earliest time.Time
	Latest   time.Time
	Cursor   string
	Limit    int
	All      bool
}

// ToValues renders the options as query parameters.
func (o *EventListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	return newParamBuilder().
		setTime("earliestStartTimeEpochMillis", o.Earliest).
		setTime("latestStartTimeEpochMillis", o.Latest).
		setString("cursor", o.Cursor).
		setInt("limit", o.Limit).
		build()
}

// PageLimit returns the pagination limit these options express.
func (o *EventListOptions) PageLimit() Limit {
	if o == nil {
		return LimitN(0)
	}

	if o.All {
		return LimitAll()
	}

	return LimitN(o.Limit)
}

// QueryOptions configures a chart API query. Query and Start are required;
// everything else has a server-side default.
type QueryOptions struct {
	// Query is the ts() or hs() expression to evaluate.
	Query string
	// Name labels the query in the response.
	Name string
	// Start is the beginning of the query window.
	Start time.Time
	// End is the end of the query window. Defaults to now when zero.
	End time.Time
	// Granularity is the point resolution: d, h, m or s.
	Granularity string
	// MaxPoints caps the number of points per series.
	MaxPoints int
	// IncludeObsoleteMetrics includes metrics unreported for over 4 weeks.
	IncludeObsoleteMetrics bool
	// StrictMode prevents the query from spanning outside the window.
	StrictMode bool
	// Summarization picks the bucket aggregation: MEAN, MEDIAN, MIN, MAX,
	// SUM, COUNT, LAST, FIRST.
	Summarization string
}

// ToValues renders the options as chart API query parameters.
func (o *QueryOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	granularity := o.Granularity
	if granularity == "" {
		granularity = "m"
	}

	return newParamBuilder().
		setString("q", o.Query).
		setString("n", o.Name).
		setTime("s", o.Start).
		setTime("e", o.End).
		setString("g", granularity).
		setInt("p", o.MaxPoints).
		setBool("includeObsoleteMetrics", o.IncludeObsoleteMetrics).
		setBool("strict", o.StrictMode).
		setString("summarization", o.Summarization).
		build()
}
