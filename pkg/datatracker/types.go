package datatracker

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeLayout is the timestamp layout used on the wire: ISO-8601-like,
// without a zone offset, always UTC. Fractional seconds may be present
// and are accepted on decode.
const TimeLayout = "2006-01-02T15:04:05"

// Time wraps time.Time with the Datatracker wire encoding.
type Time struct {
	time.Time
}

// NewTime converts t to a wire Time, normalised to UTC.
func NewTime(t time.Time) Time {
	return Time{Time: t.UTC()}
}

// UnmarshalJSON implements json.Unmarshaler. A timestamp that does not
// match the wire layout is a decode error for the whole entity.
func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding timestamp: %w", err)
	}

	parsed, err := time.Parse(TimeLayout, s)
	if err != nil {
		return fmt.Errorf("parsing timestamp %q: %w", s, err)
	}

	t.Time = parsed

	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(TimeLayout))
}

// Meta carries the pagination metadata of a collection response.
// Previous and Next are server-relative cursor paths, query string
// included; nil means first and last page respectively.
type Meta struct {
	TotalCount int     `json:"total_count" yaml:"total_count"`
	Limit      int     `json:"limit"       yaml:"limit"`
	Offset     int     `json:"offset"      yaml:"offset"`
	Previous   *string `json:"previous"    yaml:"previous"`
	Next       *string `json:"next"        yaml:"next"`
}

// ListResponse represents one page of a collection response. Objects
// preserves server order. TotalCount is not cross-checked against
// len(Objects); the two may legitimately disagree mid-stream.
type ListResponse[T any] struct {
	Meta    Meta `json:"meta"    yaml:"meta"`
	Objects []T  `json:"objects" yaml:"objects"`
}
