package datatracker

import (
	"net/url"
	"strconv"
	"time"
)

// QueryParams represents filter and paging parameters for collection
// endpoints. Build it before the first request is issued; iterators never
// mutate it after fetching has begun.
type QueryParams struct {
	// Limit is the server page size (limit query parameter).
	Limit int
	// Offset is the starting offset within the collection.
	Offset int
	// Filters maps rendered filter keys (including any __contains,
	// __gte, or __lt suffix) to their values.
	Filters map[string]string
}

// NewQueryParams creates a new empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string]string),
	}
}

// WithLimit sets the server page size.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = limit

	return q
}

// WithOffset sets the collection offset.
func (q *QueryParams) WithOffset(offset int) *QueryParams {
	q.Offset = offset

	return q
}

// WithFilter adds an exact-match filter on field.
func (q *QueryParams) WithFilter(field, value string) *QueryParams {
	q.setFilter(field, value)

	return q
}

// WithContains adds a substring-match filter on field.
func (q *QueryParams) WithContains(field, value string) *QueryParams {
	q.setFilter(field+"__contains", value)

	return q
}

// WithSince adds an inclusive lower time bound on field.
func (q *QueryParams) WithSince(field string, t time.Time) *QueryParams {
	q.setFilter(field+"__gte", t.UTC().Format(TimeLayout))

	return q
}

// WithUntil adds an exclusive upper time bound on field.
func (q *QueryParams) WithUntil(field string, t time.Time) *QueryParams {
	q.setFilter(field+"__lt", t.UTC().Format(TimeLayout))

	return q
}

func (q *QueryParams) setFilter(key, value string) {
	if q.Filters == nil {
		q.Filters = make(map[string]string)
	}

	q.Filters[key] = value
}

// ToValues converts the parameters to url.Values for the initial request.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q == nil {
		return values
	}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}

	for key, value := range q.Filters {
		values.Set(key, value)
	}

	return values
}
