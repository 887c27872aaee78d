package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/csperkins/datatracker-go/internal/http"
	"github.com/csperkins/datatracker-go/pkg/datatracker"
)

// PersonsClient implements datatracker.PersonsClient.
type PersonsClient struct {
	httpClient *http.Client
}

// NewPersonsClient creates a new persons client.
func NewPersonsClient(httpClient *http.Client) *PersonsClient {
	return &PersonsClient{
		httpClient: httpClient,
	}
}

// Get implements datatracker.PersonsClient.Get.
func (c *PersonsClient) Get(ctx context.Context, uri datatracker.PersonURI) (*datatracker.Person, error) {
	path := uri.String()

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching person: %w", err)
	}

	var person datatracker.Person

	err = json.Unmarshal(resp.Body, &person)
	if err != nil {
		return nil, &datatracker.TransportError{Path: path, Err: fmt.Errorf("parsing person: %w", err)}
	}

	return &person, nil
}

// GetByID implements datatracker.PersonsClient.GetByID.
func (c *PersonsClient) GetByID(ctx context.Context, id int64) (*datatracker.Person, error) {
	return c.Get(ctx, datatracker.PersonURIForID(id))
}

// GetByEmail implements datatracker.PersonsClient.GetByEmail. The email
// entity is fetched first; the person it references is only fetched when
// that lookup succeeds.
func (c *PersonsClient) GetByEmail(ctx context.Context, address string) (*datatracker.Person, error) {
	path := datatracker.EmailURIForAddress(address).String()

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("resolving email: %w", err)
	}

	var email datatracker.Email

	err = json.Unmarshal(resp.Body, &email)
	if err != nil {
		return nil, &datatracker.TransportError{Path: path, Err: fmt.Errorf("parsing email: %w", err)}
	}

	return c.Get(ctx, email.Person)
}

// List implements datatracker.PersonsClient.List.
func (c *PersonsClient) List(ctx context.Context, params *datatracker.QueryParams) *datatracker.PageIterator[datatracker.Person] {
	lister := &pageLister[datatracker.Person]{httpClient: c.httpClient, what: "persons"}

	return datatracker.NewPageIterator(ctx, lister, datatracker.PersonURIPrefix, params.ToValues())
}

// ListAliases implements datatracker.PersonsClient.ListAliases.
func (c *PersonsClient) ListAliases(ctx context.Context, person datatracker.PersonURI) *datatracker.PageIterator[datatracker.PersonAlias] {
	lister := &pageLister[datatracker.PersonAlias]{httpClient: c.httpClient, what: "person aliases"}
	query := url.Values{"person": []string{lastSegment(person.String())}}

	return datatracker.NewPageIterator(ctx, lister, datatracker.PersonAliasURIPrefix, query)
}

// History implements datatracker.PersonsClient.History.
func (c *PersonsClient) History(ctx context.Context, params *datatracker.QueryParams) *datatracker.PageIterator[datatracker.HistoricalPerson] {
	lister := &pageLister[datatracker.HistoricalPerson]{httpClient: c.httpClient, what: "person history"}

	return datatracker.NewPageIterator(ctx, lister, datatracker.HistoricalPersonURIPrefix, params.ToValues())
}
