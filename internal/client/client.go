// Package client implements the wavefront.Client interface against the
// Wavefront REST API v2.
package client

import (
	"github.com/wavefront-tools/wavefront-go/internal/constants"
	"github.com/wavefront-tools/wavefront-go/internal/http"
	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
)

// Client implements wavefront.Client.
type Client struct {
	httpClient *http.Client
	logger     wavefront.Logger

	alerts   wavefront.AlertsClient
	events   wavefront.EventsClient
	sources  wavefront.SourcesClient
	users    wavefront.UsersClient
	messages wavefront.MessagesClient
	query    wavefront.QueryClient
	search   wavefront.SearchClient
}

// New creates a client for the given configuration. The endpoint and token
// must already be resolved; credential discovery lives in pkg/wfclient.
func New(config *wavefront.Config) (*Client, error) {
	if config == nil {
		return nil, wavefront.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, wavefront.ErrEndpointRequired
	}

	if config.Token == "" {
		return nil, wavefront.ErrTokenRequired
	}

	opts := []http.Option{}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		waitMin := config.RetryWaitMin
		if waitMin == 0 {
			waitMin = constants.DefaultRetryWaitMin
		}

		waitMax := config.RetryWaitMax
		if waitMax == 0 {
			waitMax = constants.DefaultRetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	if config.Cache != nil {
		cache, err := wavefront.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, err
		}

		opts = append(opts, http.WithCache(cache, config.Cache.EntryTTL()))
	}

	httpClient := http.NewClient(config.Endpoint, http.StaticToken(config.Token), opts...)

	client := &Client{
		httpClient: httpClient,
		logger:     config.Logger,
	}

	client.alerts = NewAlertsClient(client)
	client.events = NewEventsClient(client)
	client.sources = NewSourcesClient(client)
	client.users = NewUsersClient(client)
	client.messages = NewMessagesClient(client)
	client.query = NewQueryClient(client)
	client.search = NewSearchClient(client)

	return client, nil
}

// Alerts returns the alerts resource client.
func (c *Client) Alerts() wavefront.AlertsClient {
	return c.alerts
}

// Events returns the events resource client.
func (c *Client) Events() wavefront.EventsClient {
	return c.events
}

// Sources returns the sources resource client.
func (c *Client) Sources() wavefront.SourcesClient {
	return c.sources
}

// Users returns the users resource client.
func (c *Client) Users() wavefront.UsersClient {
	return c.users
}

// Messages returns the messages resource client.
func (c *Client) Messages() wavefront.MessagesClient {
	return c.messages
}

// Query returns the chart query client.
func (c *Client) Query() wavefront.QueryClient {
	return c.query
}

// Search returns the search client.
func (c *Client) Search() wavefront.SearchClient {
	return c.search
}

// HTTPClient exposes the transport for integration points that need raw
// access, such as pkg/wfclient.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}
