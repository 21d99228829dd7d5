package wavefront

import (
	"context"
	"time"
)

// Client provides access to the Wavefront REST API v2 resource clients.
type Client interface {
	Alerts() AlertsClient
	Events() EventsClient
	Sources() SourcesClient
	Users() UsersClient
	Messages() MessagesClient
	Query() QueryClient
	Search() SearchClient
}

// AlertsClient manages alert resources. Alerts page by offset/limit.
type AlertsClient interface {
	List(ctx context.Context, opts *ListOptions) ([]Alert, error)
	Get(ctx context.Context, id string) (*Alert, error)
	Create(ctx context.Context, alert *Alert) (*Alert, error)
	Update(ctx context.Context, alert *Alert) (*Alert, error)
	Delete(ctx context.Context, id string) error
	Snooze(ctx context.Context, id string, duration time.Duration) (*Alert, error)
	Unsnooze(ctx context.Context, id string) (*Alert, error)
	Summary(ctx context.Context) (map[string]int, error)
}

// EventsClient manages event resources. Events page by cursor within a
// time window.
type EventsClient interface {
	List(ctx context.Context, opts *EventListOptions) ([]Event, error)
	Get(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, event *Event) (*Event, error)
	Close(ctx context.Context, id string) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// SourcesClient manages source resources. Sources page by cursor.
type SourcesClient interface {
	List(ctx context.Context, opts *CursorListOptions) ([]Source, error)
	Get(ctx context.Context, id string) (*Source, error)
	Update(ctx context.Context, source *Source) (*Source, error)
	Delete(ctx context.Context, id string) error
}

// UsersClient manages user resources. The user list endpoint returns a
// bare array, not a paginated items wrapper.
type UsersClient interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id string) (*User, error)
	Delete(ctx context.Context, id string) error
}

// MessagesClient reads system messages addressed to the account.
type MessagesClient interface {
	List(ctx context.Context, opts *ListOptions) ([]Message, error)
	MarkRead(ctx context.Context, id string) (*Message, error)
}

// QueryClient evaluates chart API queries. Run is single-shot; RunRaw
// exposes the unparsed envelope for callers that navigate dynamically.
type QueryClient interface {
	Run(ctx context.Context, opts *QueryOptions) (*QueryResult, error)
	RunRaw(ctx context.Context, opts *QueryOptions) (*APIResponse, error)
}

// SearchClient drives the search endpoints, which paginate via offset
// fields embedded in a JSON POST body rather than query parameters.
type SearchClient interface {
	Search(ctx context.Context, entity string, body *RequestBody, limit Limit) ([]Value, error)
	SearchRaw(ctx context.Context, entity string, rawBody []byte, limit Limit) ([]Value, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a wavefront.Client.
//
// # Credential precedence
//
// wfclient.New applies the following precedence:
//  1. Endpoint/Token set directly on the Config.
//  2. WAVEFRONT_ENDPOINT / WAVEFRONT_TOKEN environment variables.
//  3. The profile named by WAVEFRONT_PROFILE (default "default") in
//     ~/.wavefront/credentials.yaml.
//
// # Timeouts and retries
//
// Per-request timeouts should generally be controlled via context passed to
// client methods. Transient failures (connection errors, 429, 5xx) are
// retried by the HTTP transport; tune via RetryMax/RetryWaitMin/RetryWaitMax.
type Config struct {
	// Endpoint: base URL of the Wavefront instance, e.g.
	// "https://example.wavefront.com". A missing scheme defaults to https;
	// a trailing slash is trimmed.
	Endpoint string

	// Token: API token sent as a Bearer credential.
	Token string

	// HTTPTimeout: optional default HTTP timeout where supported.
	HTTPTimeout time.Duration

	// RetryMax: maximum number of transport retries. 0 uses the default.
	RetryMax int

	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration

	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug: enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool

	// Logger: optional structured logger used by the HTTP layer and the
	// paginator.
	Logger Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Cache: optional cache configuration for GET responses. Nil disables
	// caching.
	Cache *CacheConfig
}
