package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"testing"

	internalhttp "github.com/csperkins/datatracker-go/internal/http"
	"github.com/csperkins/datatracker-go/pkg/datatracker"
)

// NewTestClient creates a new test client pointed at the given base URL.
func NewTestClient(baseURL string) *Client {
	client := &Client{
		httpClient: internalhttp.NewClient(baseURL),
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// ServePage writes one envelope page of objects, honoring the limit and
// offset query parameters and linking to the next page when more objects
// remain past the window.
func ServePage[T any](t *testing.T, writer http.ResponseWriter, request *http.Request, path string, objects []T, defaultLimit int) {
	t.Helper()

	limit := defaultLimit

	if raw := request.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			t.Fatalf("bad limit %q: %v", raw, err)
		}

		limit = parsed
	}

	offset := 0

	if raw := request.URL.Query().Get("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			t.Fatalf("bad offset %q: %v", raw, err)
		}

		offset = parsed
	}

	total := len(objects)

	start := offset
	if start > total {
		start = total
	}

	end := start + limit
	if end > total {
		end = total
	}

	page := datatracker.ListResponse[T]{
		Meta: datatracker.Meta{
			TotalCount: total,
			Limit:      limit,
			Offset:     offset,
		},
		Objects: objects[start:end],
	}

	if offset+limit < total {
		next := fmt.Sprintf("%s?limit=%d&offset=%d", path, limit, offset+limit)
		page.Meta.Next = &next
	}

	if offset > 0 {
		prevOffset := offset - limit
		if prevOffset < 0 {
			prevOffset = 0
		}

		previous := fmt.Sprintf("%s?limit=%d&offset=%d", path, limit, prevOffset)
		page.Meta.Previous = &previous
	}

	writer.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(writer).Encode(page)
}

// StringPtr is a helper function that returns a pointer to the given string.
func StringPtr(s string) *string {
	return &s
}
