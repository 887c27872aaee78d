// Package dtclient provides the main entry point for creating Datatracker API clients
package dtclient

import (
	"fmt"
	"strings"

	"github.com/csperkins/datatracker-go/internal/client"
	"github.com/csperkins/datatracker-go/pkg/datatracker"
)

// New creates a new Datatracker API client. A nil config, or a config
// with an empty APIEndpoint, targets the production Datatracker instance.
func New(config *datatracker.Config) (datatracker.Client, error) {
	if config == nil {
		config = &datatracker.Config{}
	}

	if config.APIEndpoint != "" {
		// Normalize API endpoint
		apiEndpoint := strings.TrimSuffix(config.APIEndpoint, "/")
		if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
			apiEndpoint = "https://" + apiEndpoint
		}

		config.APIEndpoint = apiEndpoint
	}

	dtClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return dtClient, nil
}

// NewWithEndpoint creates a client for the Datatracker instance at endpoint.
func NewWithEndpoint(endpoint string) (datatracker.Client, error) {
	return New(&datatracker.Config{APIEndpoint: endpoint})
}
