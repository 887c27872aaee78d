package dtclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csperkins/datatracker-go/pkg/datatracker"
	"github.com/csperkins/datatracker-go/pkg/dtclient"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		config := &datatracker.Config{
			APIEndpoint: "https://datatracker.example.org",
		}

		client, err := dtclient.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("nil config targets the production instance", func(t *testing.T) {
		t.Parallel()

		client, err := dtclient.New(nil)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("endpoint without scheme", func(t *testing.T) {
		t.Parallel()

		client, err := dtclient.New(&datatracker.Config{APIEndpoint: "datatracker.example.org/"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestNewWithEndpoint(t *testing.T) {
	t.Parallel()

	client, err := dtclient.NewWithEndpoint("https://datatracker.example.org")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestClientRoundTrip(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/person/person/20209/", r.URL.Path)

		person := datatracker.Person{
			ID:          20209,
			ResourceURI: datatracker.PersonURIForID(20209),
			Name:        "Colin Perkins",
		}
		_ = json.NewEncoder(w).Encode(person)
	}))
	defer server.Close()

	client, err := dtclient.NewWithEndpoint(server.URL)
	require.NoError(t, err)

	person, err := client.Persons().GetByID(context.Background(), 20209)
	require.NoError(t, err)
	assert.Equal(t, "Colin Perkins", person.Name)
}
