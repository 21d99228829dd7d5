package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits for the transport layer.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination limits.
const (
	// PaginationPageSize is the per-request page size used when the caller
	// asked for all items.
	PaginationPageSize = 100

	// StandardPageSize is the common page size for interactive listings.
	StandardPageSize = 50
)

// Buffer sizes.
const (
	// SmallBufferSize is used for page streaming channels.
	SmallBufferSize = 10
)

// Cache sizing and lifetimes.
const (
	// DefaultCacheSize is the default cache entry limit.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is the default cache time-to-live.
	DefaultCacheTTL = 5 * time.Minute

	// MaxCacheValueSize is the maximum size for cached response bodies (1MB).
	MaxCacheValueSize = 1024 * 1024
)

// Output format names.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// Display limits.
const (
	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2

	// QueryDisplayLength is the default length for truncating query
	// expressions in tables.
	QueryDisplayLength = 60
)

// Alert severity names accepted by the API.
const (
	// SeverityInfo for informational alerts.
	SeverityInfo = "INFO"

	// SeveritySmoke for low-priority alerts.
	SeveritySmoke = "SMOKE"

	// SeverityWarn for warning alerts.
	SeverityWarn = "WARN"

	// SeveritySevere for severe alerts.
	SeveritySevere = "SEVERE"
)
