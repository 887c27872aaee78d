package datatracker_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csperkins/datatracker-go/pkg/datatracker"
)

func TestTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "plain timestamp",
			input:    `"2012-02-26T00:03:12"`,
			expected: time.Date(2012, 2, 26, 0, 3, 12, 0, time.UTC),
		},
		{
			name:     "fractional seconds",
			input:    `"2021-05-11T01:26:26.306812"`,
			expected: time.Date(2021, 5, 11, 1, 26, 26, 306812000, time.UTC),
		},
		{
			name:    "not a string",
			input:   `42`,
			wantErr: true,
		},
		{
			name:    "wrong layout",
			input:   `"2012-02-26 00:03:12"`,
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var parsed datatracker.Time

			err := json.Unmarshal([]byte(testCase.input), &parsed)

			if testCase.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.True(t, testCase.expected.Equal(parsed.Time))
			}
		})
	}
}

func TestTime_MarshalJSON(t *testing.T) {
	stamp := datatracker.NewTime(time.Date(2012, 2, 26, 0, 3, 12, 0, time.UTC))

	data, err := json.Marshal(stamp)
	require.NoError(t, err)
	assert.Equal(t, `"2012-02-26T00:03:12"`, string(data))
}

func TestListResponse_Unmarshal(t *testing.T) {
	payload := `{
		"meta": {
			"total_count": 5,
			"limit": 2,
			"offset": 2,
			"previous": "/api/v1/person/person/?limit=2&offset=0",
			"next": "/api/v1/person/person/?limit=2&offset=4"
		},
		"objects": [
			{"id": 3, "resource_uri": "/api/v1/person/person/3/", "name": "Person Three"},
			{"id": 4, "resource_uri": "/api/v1/person/person/4/", "name": "Person Four"}
		]
	}`

	var page datatracker.ListResponse[datatracker.Person]

	err := json.Unmarshal([]byte(payload), &page)
	require.NoError(t, err)

	assert.Equal(t, 5, page.Meta.TotalCount)
	assert.Equal(t, 2, page.Meta.Limit)
	assert.Equal(t, 2, page.Meta.Offset)
	require.NotNil(t, page.Meta.Next)
	assert.Equal(t, "/api/v1/person/person/?limit=2&offset=4", *page.Meta.Next)
	require.NotNil(t, page.Meta.Previous)

	require.Len(t, page.Objects, 2)
	assert.Equal(t, int64(3), page.Objects[0].ID)
	assert.Equal(t, datatracker.PersonURIForID(4), page.Objects[1].ResourceURI)
}

func TestListResponse_UnmarshalLastPage(t *testing.T) {
	payload := `{
		"meta": {"total_count": 1, "limit": 100, "offset": 0, "previous": null, "next": null},
		"objects": [{"id": 1, "resource_uri": "/api/v1/person/person/1/", "name": "Person One"}]
	}`

	var page datatracker.ListResponse[datatracker.Person]

	err := json.Unmarshal([]byte(payload), &page)
	require.NoError(t, err)
	assert.Nil(t, page.Meta.Next)
	assert.Nil(t, page.Meta.Previous)
}

func TestPerson_Unmarshal(t *testing.T) {
	payload := `{
		"id": 20209,
		"resource_uri": "/api/v1/person/person/20209/",
		"name": "Colin Perkins",
		"name_from_draft": "Colin Perkins",
		"ascii": "Colin Perkins",
		"ascii_short": null,
		"biography": "",
		"time": "2012-02-26T00:03:12",
		"photo": null,
		"photo_thumb": null,
		"user": null,
		"consent": true
	}`

	var person datatracker.Person

	err := json.Unmarshal([]byte(payload), &person)
	require.NoError(t, err)

	assert.Equal(t, int64(20209), person.ID)
	assert.Equal(t, datatracker.PersonURIForID(20209), person.ResourceURI)
	require.NotNil(t, person.NameFromDraft)
	assert.Equal(t, "Colin Perkins", *person.NameFromDraft)
	assert.Nil(t, person.ASCIIShort)
	assert.Equal(t, time.Date(2012, 2, 26, 0, 3, 12, 0, time.UTC), person.Time.Time)
	require.NotNil(t, person.Consent)
	assert.True(t, *person.Consent)
}

func TestDocument_Unmarshal(t *testing.T) {
	payload := `{
		"id": 77406,
		"resource_uri": "/api/v1/doc/document/draft-ietf-quic-transport/",
		"name": "draft-ietf-quic-transport",
		"title": "QUIC: A UDP-Based Multiplexed and Secure Transport",
		"rev": "34",
		"pages": 207,
		"time": "2021-05-27T09:21:59",
		"expires": "2021-11-28T09:21:59",
		"type": "/api/v1/name/doctypename/draft/",
		"group": "/api/v1/group/group/2161/",
		"ad": "/api/v1/person/person/21684/",
		"shepherd": "/api/v1/person/email/lars@eggert.org/",
		"states": ["/api/v1/doc/state/3/", "/api/v1/doc/state/7/"],
		"submissions": ["/api/v1/submit/submission/118360/"],
		"tags": []
	}`

	var document datatracker.Document

	err := json.Unmarshal([]byte(payload), &document)
	require.NoError(t, err)

	require.NotNil(t, document.Group)
	assert.Equal(t, datatracker.GroupURI("/api/v1/group/group/2161/"), *document.Group)
	require.NotNil(t, document.AD)
	assert.Equal(t, datatracker.PersonURIForID(21684), *document.AD)
	require.NotNil(t, document.Shepherd)
	assert.Equal(t, "lars@eggert.org", document.Shepherd.Address())
	require.Len(t, document.States, 2)
	require.Len(t, document.Submissions, 1)
	require.NotNil(t, document.Pages)
	assert.Equal(t, int64(207), *document.Pages)
}
