package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/csperkins/datatracker-go/internal/http"
	"github.com/csperkins/datatracker-go/pkg/datatracker"
)

// DocumentsClient implements datatracker.DocumentsClient.
type DocumentsClient struct {
	httpClient *http.Client
}

// NewDocumentsClient creates a new documents client.
func NewDocumentsClient(httpClient *http.Client) *DocumentsClient {
	return &DocumentsClient{
		httpClient: httpClient,
	}
}

// Get implements datatracker.DocumentsClient.Get.
func (c *DocumentsClient) Get(ctx context.Context, uri datatracker.DocumentURI) (*datatracker.Document, error) {
	path := uri.String()

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching document: %w", err)
	}

	var document datatracker.Document

	err = json.Unmarshal(resp.Body, &document)
	if err != nil {
		return nil, &datatracker.TransportError{Path: path, Err: fmt.Errorf("parsing document: %w", err)}
	}

	return &document, nil
}

// GetByName implements datatracker.DocumentsClient.GetByName.
func (c *DocumentsClient) GetByName(ctx context.Context, name string) (*datatracker.Document, error) {
	return c.Get(ctx, datatracker.DocumentURIForName(name))
}

// List implements datatracker.DocumentsClient.List.
func (c *DocumentsClient) List(ctx context.Context, params *datatracker.QueryParams) *datatracker.PageIterator[datatracker.Document] {
	lister := &pageLister[datatracker.Document]{httpClient: c.httpClient, what: "documents"}

	return datatracker.NewPageIterator(ctx, lister, datatracker.DocumentURIPrefix, params.ToValues())
}

// GetState implements datatracker.DocumentsClient.GetState.
func (c *DocumentsClient) GetState(ctx context.Context, uri datatracker.DocStateURI) (*datatracker.DocState, error) {
	path := uri.String()

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching document state: %w", err)
	}

	var state datatracker.DocState

	err = json.Unmarshal(resp.Body, &state)
	if err != nil {
		return nil, &datatracker.TransportError{Path: path, Err: fmt.Errorf("parsing document state: %w", err)}
	}

	return &state, nil
}

// ListStates implements datatracker.DocumentsClient.ListStates.
func (c *DocumentsClient) ListStates(ctx context.Context, params *datatracker.QueryParams) *datatracker.PageIterator[datatracker.DocState] {
	lister := &pageLister[datatracker.DocState]{httpClient: c.httpClient, what: "document states"}

	return datatracker.NewPageIterator(ctx, lister, datatracker.DocStateURIPrefix, params.ToValues())
}

// GetStateType implements datatracker.DocumentsClient.GetStateType.
func (c *DocumentsClient) GetStateType(ctx context.Context, uri datatracker.DocStateTypeURI) (*datatracker.DocStateType, error) {
	path := uri.String()

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching document state type: %w", err)
	}

	var stateType datatracker.DocStateType

	err = json.Unmarshal(resp.Body, &stateType)
	if err != nil {
		return nil, &datatracker.TransportError{Path: path, Err: fmt.Errorf("parsing document state type: %w", err)}
	}

	return &stateType, nil
}
