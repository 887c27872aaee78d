package datatracker_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/csperkins/datatracker-go/pkg/datatracker"
)

func TestQueryParams_ToValues(t *testing.T) {
	tests := []struct {
		name     string
		params   *datatracker.QueryParams
		expected url.Values
	}{
		{
			name:     "nil params",
			params:   nil,
			expected: url.Values{},
		},
		{
			name:     "empty params",
			params:   datatracker.NewQueryParams(),
			expected: url.Values{},
		},
		{
			name:   "limit and offset",
			params: datatracker.NewQueryParams().WithLimit(25).WithOffset(50),
			expected: url.Values{
				"limit":  []string{"25"},
				"offset": []string{"50"},
			},
		},
		{
			name:   "zero limit omitted",
			params: datatracker.NewQueryParams().WithLimit(0),
			expected: url.Values{},
		},
		{
			name:   "exact filter",
			params: datatracker.NewQueryParams().WithFilter("name", "avtcore"),
			expected: url.Values{
				"name": []string{"avtcore"},
			},
		},
		{
			name:   "contains filter",
			params: datatracker.NewQueryParams().WithContains("name", "quic"),
			expected: url.Values{
				"name__contains": []string{"quic"},
			},
		},
		{
			name: "time range filters",
			params: datatracker.NewQueryParams().
				WithSince("time", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)).
				WithUntil("time", time.Date(2024, 6, 7, 8, 9, 10, 0, time.UTC)),
			expected: url.Values{
				"time__gte": []string{"2024-01-02T03:04:05"},
				"time__lt":  []string{"2024-06-07T08:09:10"},
			},
		},
		{
			name: "repeated filter keeps the last value",
			params: datatracker.NewQueryParams().
				WithFilter("type", "wg").
				WithFilter("type", "rg"),
			expected: url.Values{
				"type": []string{"rg"},
			},
		},
		{
			name: "everything combined",
			params: datatracker.NewQueryParams().
				WithLimit(10).
				WithFilter("state", "active").
				WithContains("name", "transport"),
			expected: url.Values{
				"limit":          []string{"10"},
				"state":          []string{"active"},
				"name__contains": []string{"transport"},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.params.ToValues())
		})
	}
}

func TestQueryParams_WithSinceNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	params := datatracker.NewQueryParams().WithSince("time", time.Date(2024, 1, 2, 12, 0, 0, 0, loc))

	assert.Equal(t, "2024-01-02T10:00:00", params.ToValues().Get("time__gte"))
}

func TestQueryParams_Chaining(t *testing.T) {
	params := datatracker.NewQueryParams()
	returned := params.WithLimit(5).WithFilter("rev", "09")

	// Builder methods mutate and return the same instance
	assert.Same(t, params, returned)
	assert.Equal(t, 5, params.Limit)
	assert.Equal(t, "09", params.Filters["rev"])
}
