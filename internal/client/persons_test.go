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

func testPerson(id int64, name string) datatracker.Person {
	return datatracker.Person{
		ID:          id,
		ResourceURI: datatracker.PersonURIForID(id),
		Name:        name,
		ASCII:       name,
	}
}

func TestPersonsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/person/person/20209/", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		person := testPerson(20209, "Colin Perkins")
		_ = json.NewEncoder(w).Encode(person)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	uri, err := datatracker.ParsePersonURI("/api/v1/person/person/20209/")
	require.NoError(t, err)

	person, err := client.Persons().Get(context.Background(), uri)
	require.NoError(t, err)
	assert.Equal(t, int64(20209), person.ID)
	assert.Equal(t, "Colin Perkins", person.Name)
	assert.Equal(t, uri, person.ResourceURI)
}

func TestPersonsClient_GetByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/person/person/20209/", r.URL.Path)

		person := testPerson(20209, "Colin Perkins")
		_ = json.NewEncoder(w).Encode(person)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	person, err := client.Persons().GetByID(context.Background(), 20209)
	require.NoError(t, err)
	assert.Equal(t, int64(20209), person.ID)
}

func TestPersonsClient_GetByEmail(t *testing.T) {
	requests := []string{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.Path)

		switch r.URL.Path {
		case "/api/v1/person/email/csp@csperkins.org/":
			email := datatracker.Email{
				ResourceURI: datatracker.EmailURIForAddress("csp@csperkins.org"),
				Address:     "csp@csperkins.org",
				Person:      datatracker.PersonURIForID(20209),
				Primary:     true,
				Active:      true,
			}
			_ = json.NewEncoder(w).Encode(email)
		case "/api/v1/person/person/20209/":
			_ = json.NewEncoder(w).Encode(testPerson(20209, "Colin Perkins"))
		default:
			t.Errorf("unexpected request: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	person, err := client.Persons().GetByEmail(context.Background(), "csp@csperkins.org")
	require.NoError(t, err)
	assert.Equal(t, int64(20209), person.ID)
	assert.Equal(t, "Colin Perkins", person.Name)
	assert.Equal(t, []string{
		"/api/v1/person/email/csp@csperkins.org/",
		"/api/v1/person/person/20209/",
	}, requests)
}

func TestPersonsClient_GetByEmail_Missing(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	person, err := client.Persons().GetByEmail(context.Background(), "nobody@example.org")
	require.Error(t, err)
	assert.Nil(t, person)
	assert.True(t, datatracker.IsNotFound(err))
	// The person fetch must not be attempted once the email lookup fails.
	assert.Equal(t, 1, requests)
}

func TestPersonsClient_List(t *testing.T) {
	people := []datatracker.Person{
		testPerson(1, "Person One"),
		testPerson(2, "Person Two"),
		testPerson(3, "Person Three"),
		testPerson(4, "Person Four"),
		testPerson(5, "Person Five"),
	}

	fetches := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/person/person/", r.URL.Path)

		fetches++

		ServePage(t, w, r, "/api/v1/person/person/", people, 100)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	t.Run("all pages in order", func(t *testing.T) {
		fetches = 0

		params := datatracker.NewQueryParams().WithLimit(2)
		results, err := client.Persons().List(context.Background(), params).All()
		require.NoError(t, err)
		require.Len(t, results, 5)

		for i, person := range results {
			assert.Equal(t, people[i].ID, person.ID)
		}

		// Five objects at two per page is three fetches.
		assert.Equal(t, 3, fetches)
	})

	t.Run("fetches pages lazily", func(t *testing.T) {
		fetches = 0

		params := datatracker.NewQueryParams().WithLimit(2)
		it := client.Persons().List(context.Background(), params)

		for i := 0; i < 3; i++ {
			_, err := it.Next()
			require.NoError(t, err)
		}

		assert.Equal(t, 2, fetches)
	})

	t.Run("for each", func(t *testing.T) {
		names := []string{}

		err := client.Persons().List(context.Background(), nil).ForEach(func(p datatracker.Person) error {
			names = append(names, p.Name)

			return nil
		})
		require.NoError(t, err)
		assert.Len(t, names, 5)
		assert.Equal(t, "Person One", names[0])
	})
}

func TestPersonsClient_List_Filtered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/person/person/", r.URL.Path)
		assert.Equal(t, "Perkins", r.URL.Query().Get("name__contains"))

		ServePage(t, w, r, "/api/v1/person/person/", []datatracker.Person{testPerson(20209, "Colin Perkins")}, 100)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	params := datatracker.NewQueryParams().WithContains("name", "Perkins")
	results, err := client.Persons().List(context.Background(), params).All()
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Colin Perkins", results[0].Name)
}

func TestPersonsClient_ListAliases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/person/alias/", r.URL.Path)
		assert.Equal(t, "20209", r.URL.Query().Get("person"))

		aliases := []datatracker.PersonAlias{
			{ID: 1, Person: datatracker.PersonURIForID(20209), Name: "Colin Perkins"},
			{ID: 2, Person: datatracker.PersonURIForID(20209), Name: "C. S. Perkins"},
		}
		ServePage(t, w, r, "/api/v1/person/alias/", aliases, 100)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	aliases, err := client.Persons().ListAliases(context.Background(), datatracker.PersonURIForID(20209)).All()
	require.NoError(t, err)
	require.Len(t, aliases, 2)
	assert.Equal(t, "C. S. Perkins", aliases[1].Name)
}

func TestPersonsClient_History(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/person/historicalperson/", r.URL.Path)
		assert.Equal(t, "20209", r.URL.Query().Get("id"))

		history := []datatracker.HistoricalPerson{
			{ID: 20209, Name: "Colin Perkins", HistoryType: "~", HistoryID: 1},
		}
		ServePage(t, w, r, "/api/v1/person/historicalperson/", history, 100)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	params := datatracker.NewQueryParams().WithFilter("id", "20209")
	history, err := client.Persons().History(context.Background(), params).All()
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "~", history[0].HistoryType)
}

func TestPersonsClient_List_FetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	it := client.Persons().List(context.Background(), nil)

	_, err := it.Next()
	require.Error(t, err)
	assert.True(t, datatracker.IsNotFound(err))

	// The error is yielded once; afterwards the sequence is exhausted.
	_, err = it.Next()
	assert.ErrorIs(t, err, datatracker.ErrNoMoreItems)
}

func TestPersonsClient_Get_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": "not-a-number"`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.Persons().GetByID(context.Background(), 20209)
	require.Error(t, err)
	assert.True(t, datatracker.IsTransport(err))
	assert.False(t, datatracker.IsNotFound(err))
}

func TestPersonsClient_List_MalformedItemFailsPage(t *testing.T) {
	fetches := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++

		// The second object carries a timestamp that does not match the
		// wire layout, so decoding the envelope must fail as a whole.
		_, _ = w.Write([]byte(`{
			"meta": {"total_count": 2, "limit": 20, "offset": 0, "previous": null, "next": null},
			"objects": [
				{"id": 20209, "resource_uri": "/api/v1/person/person/20209/", "name": "Colin Perkins"},
				{"id": 108756, "resource_uri": "/api/v1/person/person/108756/", "name": "Lars Eggert", "time": "26/02/2012"}
			]
		}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	it := client.Persons().List(context.Background(), nil)

	// No partial page: the valid first item is never yielded.
	_, err := it.Next()
	require.Error(t, err)
	assert.True(t, datatracker.IsTransport(err))

	_, err = it.Next()
	assert.ErrorIs(t, err, datatracker.ErrNoMoreItems)
	assert.False(t, it.HasNext())
	assert.Equal(t, 1, fetches)
}
