package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/csperkins/datatracker-go/pkg/datatracker"
	"github.com/csperkins/datatracker-go/pkg/dtclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// JSON formatting.
	defaultJSONIndent = 2

	// Default number of items fetched by list commands.
	defaultListLimit = 25

	timestampFormat = "2006-01-02 15:04:05"
)

// Common static errors used throughout the commands package.
var (
	ErrPersonArgumentRequired = errors.New("an email address, person ID, or person URI is required")
)

// CreateClient builds a Datatracker client from the CLI configuration.
func CreateClient() (datatracker.Client, error) {
	config := &datatracker.Config{
		APIEndpoint: viper.GetString("api"),
	}

	if viper.GetBool("verbose") {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		config.Logger = &zerologAdapter{logger: logger}
		config.Debug = true
	}

	client, err := dtclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// zerologAdapter adapts a zerolog.Logger to datatracker.Logger.
type zerologAdapter struct {
	logger zerolog.Logger
}

func (l *zerologAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

func (l *zerologAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

func (l *zerologAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

func (l *zerologAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}

// StandardJSONRenderer creates a standard JSON encoder.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer creates a standard YAML encoder.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultJSONIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// collectItems drains up to limit items from the iterator; a limit of zero
// or less drains everything.
func collectItems[T any](iterator *datatracker.PageIterator[T], limit int) ([]T, error) {
	var items []T

	for limit <= 0 || len(items) < limit {
		item, err := iterator.Next()
		if errors.Is(err, datatracker.ErrNoMoreItems) {
			break
		}

		if err != nil {
			return nil, err
		}

		items = append(items, *item)
	}

	return items, nil
}

// parseTimeFlag accepts either a bare date or a full timestamp.
func parseTimeFlag(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognised time %q: want YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS", value)
}

// applyTimeRange adds since/until bounds on field when the flags were set.
func applyTimeRange(params *datatracker.QueryParams, field, since, until string) error {
	if since != "" {
		bound, err := parseTimeFlag(since)
		if err != nil {
			return fmt.Errorf("invalid --since: %w", err)
		}

		params.WithSince(field, bound)
	}

	if until != "" {
		bound, err := parseTimeFlag(until)
		if err != nil {
			return fmt.Errorf("invalid --until: %w", err)
		}

		params.WithUntil(field, bound)
	}

	return nil
}

func derefString(value *string) string {
	if value == nil {
		return NotAvailable
	}

	return *value
}

func formatTime(stamp datatracker.Time) string {
	if stamp.IsZero() {
		return NotAvailable
	}

	return stamp.Format(timestampFormat)
}
