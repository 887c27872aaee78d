//go:build integration
// +build integration

package integration

import (
	"os"
	"testing"
	"time"

	"github.com/csperkins/datatracker-go/pkg/datatracker"
	"github.com/csperkins/datatracker-go/pkg/dtclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIEndpoint string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIEndpoint: os.Getenv("DATATRACKER_ENDPOINT"),
		Verbose:     os.Getenv("DATATRACKER_VERBOSE") == "true",
	}
}

// SkipIfDisabled skips the test unless live API tests are enabled
func (c *TestConfig) SkipIfDisabled(t *testing.T) {
	if os.Getenv("DATATRACKER_INTEGRATION") != "true" {
		t.Skip("Skipping integration test: set DATATRACKER_INTEGRATION=true to run against the live API")
	}
}

// NewTestClient builds a client pointed at the configured endpoint,
// falling back to the public Datatracker instance.
func NewTestClient(t *testing.T, config *TestConfig) datatracker.Client {
	cfg := &datatracker.Config{
		APIEndpoint: config.APIEndpoint,
		HTTPTimeout: 60 * time.Second,
		Debug:       config.Verbose,
	}

	client, err := dtclient.New(cfg)
	if err != nil {
		t.Fatalf("Failed to create test client: %v", err)
	}

	return client
}
