package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/csperkins/datatracker-go/internal/http"
	"github.com/csperkins/datatracker-go/pkg/datatracker"
)

// EmailsClient implements datatracker.EmailsClient.
type EmailsClient struct {
	httpClient *http.Client
}

// NewEmailsClient creates a new emails client.
func NewEmailsClient(httpClient *http.Client) *EmailsClient {
	return &EmailsClient{
		httpClient: httpClient,
	}
}

// Get implements datatracker.EmailsClient.Get.
func (c *EmailsClient) Get(ctx context.Context, address string) (*datatracker.Email, error) {
	return c.GetByURI(ctx, datatracker.EmailURIForAddress(address))
}

// GetByURI implements datatracker.EmailsClient.GetByURI.
func (c *EmailsClient) GetByURI(ctx context.Context, uri datatracker.EmailURI) (*datatracker.Email, error) {
	path := uri.String()

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching email: %w", err)
	}

	var email datatracker.Email

	err = json.Unmarshal(resp.Body, &email)
	if err != nil {
		return nil, &datatracker.TransportError{Path: path, Err: fmt.Errorf("parsing email: %w", err)}
	}

	return &email, nil
}

// ForPerson implements datatracker.EmailsClient.ForPerson.
func (c *EmailsClient) ForPerson(ctx context.Context, person datatracker.PersonURI) *datatracker.PageIterator[datatracker.Email] {
	lister := &pageLister[datatracker.Email]{httpClient: c.httpClient, what: "emails"}
	query := url.Values{"person": []string{lastSegment(person.String())}}

	return datatracker.NewPageIterator(ctx, lister, datatracker.EmailURIPrefix, query)
}

// History implements datatracker.EmailsClient.History.
func (c *EmailsClient) History(ctx context.Context, params *datatracker.QueryParams) *datatracker.PageIterator[datatracker.HistoricalEmail] {
	lister := &pageLister[datatracker.HistoricalEmail]{httpClient: c.httpClient, what: "email history"}

	return datatracker.NewPageIterator(ctx, lister, datatracker.HistoricalEmailURIPrefix, params.ToValues())
}
