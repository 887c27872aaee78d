package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/csperkins/datatracker-go/internal/http"
	"github.com/csperkins/datatracker-go/pkg/datatracker"
)

// GroupsClient implements datatracker.GroupsClient.
type GroupsClient struct {
	httpClient *http.Client
}

// NewGroupsClient creates a new groups client.
func NewGroupsClient(httpClient *http.Client) *GroupsClient {
	return &GroupsClient{
		httpClient: httpClient,
	}
}

// Get implements datatracker.GroupsClient.Get.
func (c *GroupsClient) Get(ctx context.Context, uri datatracker.GroupURI) (*datatracker.Group, error) {
	path := uri.String()

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching group: %w", err)
	}

	var group datatracker.Group

	err = json.Unmarshal(resp.Body, &group)
	if err != nil {
		return nil, &datatracker.TransportError{Path: path, Err: fmt.Errorf("parsing group: %w", err)}
	}

	return &group, nil
}

// GetByAcronym implements datatracker.GroupsClient.GetByAcronym. Acronyms
// are unique, so the lookup is a filtered list taking the first match. An
// empty result is reported as a not-found error.
func (c *GroupsClient) GetByAcronym(ctx context.Context, acronym string) (*datatracker.Group, error) {
	lister := &pageLister[datatracker.Group]{httpClient: c.httpClient, what: "groups"}
	query := url.Values{"acronym": []string{acronym}, "limit": []string{"1"}}

	page, err := lister.ListPage(ctx, datatracker.GroupURIPrefix, query)
	if err != nil {
		return nil, fmt.Errorf("fetching group by acronym: %w", err)
	}

	if len(page.Objects) == 0 {
		return nil, &datatracker.NotFoundError{Path: datatracker.GroupURIPrefix + "?acronym=" + acronym}
	}

	return &page.Objects[0], nil
}

// List implements datatracker.GroupsClient.List.
func (c *GroupsClient) List(ctx context.Context, params *datatracker.QueryParams) *datatracker.PageIterator[datatracker.Group] {
	lister := &pageLister[datatracker.Group]{httpClient: c.httpClient, what: "groups"}

	return datatracker.NewPageIterator(ctx, lister, datatracker.GroupURIPrefix, params.ToValues())
}

// GetState implements datatracker.GroupsClient.GetState.
func (c *GroupsClient) GetState(ctx context.Context, uri datatracker.GroupStateURI) (*datatracker.GroupState, error) {
	path := uri.String()

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching group state: %w", err)
	}

	var state datatracker.GroupState

	err = json.Unmarshal(resp.Body, &state)
	if err != nil {
		return nil, &datatracker.TransportError{Path: path, Err: fmt.Errorf("parsing group state: %w", err)}
	}

	return &state, nil
}

// GetType implements datatracker.GroupsClient.GetType.
func (c *GroupsClient) GetType(ctx context.Context, uri datatracker.GroupTypeURI) (*datatracker.GroupType, error) {
	path := uri.String()

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching group type: %w", err)
	}

	var groupType datatracker.GroupType

	err = json.Unmarshal(resp.Body, &groupType)
	if err != nil {
		return nil, &datatracker.TransportError{Path: path, Err: fmt.Errorf("parsing group type: %w", err)}
	}

	return &groupType, nil
}
