package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/csperkins/datatracker-go/internal/http"
	"github.com/csperkins/datatracker-go/pkg/datatracker"
)

// Static errors for err113 compliance.
var (
	ErrInvalidAPIEndpoint = errors.New("invalid API endpoint")
)

const (
	defaultRetryWaitMin = 1 * time.Second
	defaultRetryWaitMax = 30 * time.Second
)

// Client implements the datatracker.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     datatracker.Logger

	// Resource clients
	persons   datatracker.PersonsClient
	emails    datatracker.EmailsClient
	documents datatracker.DocumentsClient
	groups    datatracker.GroupsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *datatracker.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := defaultRetryWaitMin
		retryWaitMax := defaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new Datatracker API client.
func New(config *datatracker.Config) (*Client, error) {
	if config == nil {
		config = &datatracker.Config{}
	}

	endpoint := config.APIEndpoint
	if endpoint == "" {
		endpoint = datatracker.DefaultAPIEndpoint
	}

	parsed, err := url.Parse(endpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAPIEndpoint, endpoint)
	}

	httpOpts := createHTTPClientOptions(config)

	client := &Client{
		httpClient: http.NewClient(endpoint, httpOpts...),
		baseURL:    endpoint,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// initializeResourceClients initializes the resource-family clients.
func (c *Client) initializeResourceClients() {
	c.persons = NewPersonsClient(c.httpClient)
	c.emails = NewEmailsClient(c.httpClient)
	c.documents = NewDocumentsClient(c.httpClient)
	c.groups = NewGroupsClient(c.httpClient)
}

// Persons implements datatracker.Client.Persons.
func (c *Client) Persons() datatracker.PersonsClient {
	return c.persons
}

// Emails implements datatracker.Client.Emails.
func (c *Client) Emails() datatracker.EmailsClient {
	return c.emails
}

// Documents implements datatracker.Client.Documents.
func (c *Client) Documents() datatracker.DocumentsClient {
	return c.documents
}

// Groups implements datatracker.Client.Groups.
func (c *Client) Groups() datatracker.GroupsClient {
	return c.groups
}

// pageLister adapts the HTTP layer to datatracker.PageLister for one
// resource kind.
type pageLister[T any] struct {
	httpClient *http.Client
	what       string
}

// ListPage fetches and decodes a single envelope page.
func (l *pageLister[T]) ListPage(ctx context.Context, path string, query url.Values) (*datatracker.ListResponse[T], error) {
	resp, err := l.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", l.what, err)
	}

	var page datatracker.ListResponse[T]

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, &datatracker.TransportError{Path: path, Err: fmt.Errorf("parsing %s list: %w", l.what, err)}
	}

	return &page, nil
}

// lastSegment returns the trailing path segment of a resource URI, which
// is what the API expects as the value of a relation filter.
func lastSegment(path string) string {
	trimmed := path

	for len(trimmed) > 0 && trimmed[len(trimmed)-1] == '/' {
		trimmed = trimmed[:len(trimmed)-1]
	}

	for i := len(trimmed) - 1; i >= 0; i-- {
		if trimmed[i] == '/' {
			return trimmed[i+1:]
		}
	}

	return trimmed
}
