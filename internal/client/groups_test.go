package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csperkins/datatracker-go/pkg/datatracker"
)

func testGroup(id int64, acronym string) datatracker.Group {
	return datatracker.Group{
		ID:          id,
		ResourceURI: datatracker.GroupURI("/api/v1/group/group/" + acronym + "/"),
		Acronym:     acronym,
		Name:        "Audio/Video Transport Core Maintenance",
		Type:        "/api/v1/name/grouptypename/wg/",
		State:       "/api/v1/name/groupstatename/active/",
	}
}

func TestGroupsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/group/group/941/", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		_ = json.NewEncoder(w).Encode(testGroup(941, "avtcore"))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	uri, err := datatracker.ParseGroupURI("/api/v1/group/group/941/")
	require.NoError(t, err)

	group, err := client.Groups().Get(context.Background(), uri)
	require.NoError(t, err)
	assert.Equal(t, "avtcore", group.Acronym)
	assert.Equal(t, datatracker.GroupTypeURI("/api/v1/name/grouptypename/wg/"), group.Type)
}

func TestGroupsClient_GetByAcronym(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/group/group/", r.URL.Path)
		assert.Equal(t, "avtcore", r.URL.Query().Get("acronym"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		ServePage(t, w, r, "/api/v1/group/group/", []datatracker.Group{testGroup(941, "avtcore")}, 100)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	group, err := client.Groups().GetByAcronym(context.Background(), "avtcore")
	require.NoError(t, err)
	assert.Equal(t, int64(941), group.ID)
	assert.Equal(t, "avtcore", group.Acronym)
}

func TestGroupsClient_GetByAcronym_Missing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServePage(t, w, r, "/api/v1/group/group/", []datatracker.Group{}, 100)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	group, err := client.Groups().GetByAcronym(context.Background(), "nosuchwg")
	require.Error(t, err)
	assert.Nil(t, group)
	assert.True(t, datatracker.IsNotFound(err))
	assert.Contains(t, err.Error(), "nosuchwg")
}

func TestGroupsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/group/group/", r.URL.Path)
		assert.Equal(t, "wg", r.URL.Query().Get("type"))

		groups := []datatracker.Group{
			testGroup(941, "avtcore"),
			testGroup(2161, "quic"),
		}
		ServePage(t, w, r, "/api/v1/group/group/", groups, 100)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	params := datatracker.NewQueryParams().WithFilter("type", "wg")
	groups, err := client.Groups().List(context.Background(), params).All()
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "quic", groups[1].Acronym)
}

func TestGroupsClient_GetState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/name/groupstatename/active/", r.URL.Path)

		state := datatracker.GroupState{
			ResourceURI: "/api/v1/name/groupstatename/active/",
			Slug:        "active",
			Name:        "Active",
			Used:        true,
		}
		_ = json.NewEncoder(w).Encode(state)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	uri, err := datatracker.ParseGroupStateURI("/api/v1/name/groupstatename/active/")
	require.NoError(t, err)

	state, err := client.Groups().GetState(context.Background(), uri)
	require.NoError(t, err)
	assert.Equal(t, "active", state.Slug)
	assert.True(t, state.Used)
}

func TestGroupsClient_GetType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/name/grouptypename/wg/", r.URL.Path)

		groupType := datatracker.GroupType{
			ResourceURI: "/api/v1/name/grouptypename/wg/",
			Slug:        "wg",
			Name:        "WG",
			VerboseName: "Working Group",
			Used:        true,
		}
		_ = json.NewEncoder(w).Encode(groupType)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	uri, err := datatracker.ParseGroupTypeURI("/api/v1/name/grouptypename/wg/")
	require.NoError(t, err)

	groupType, err := client.Groups().GetType(context.Background(), uri)
	require.NoError(t, err)
	assert.Equal(t, "Working Group", groupType.VerboseName)
}
