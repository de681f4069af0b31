package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// LocalDateTimeLayout is a wall-clock timestamp with no zone designator.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

// LocalDateTime carries a venue wall-clock instant. The zero value renders as null.
type LocalDateTime struct {
	time.Time
}

// MarshalJSON renders the wall-clock reading without converting zones.
func (l LocalDateTime) MarshalJSON() ([]byte, error) {
	if l.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(l.Format(LocalDateTimeLayout))
}

func (l *LocalDateTime) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		l.Time = time.Time{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}
	parsed, err := ParseLocalDateTime(raw, time.UTC)
	if err != nil {
		return err
	}
	l.Time = parsed
	return nil
}

var localDateTimeLayouts = []string{
	LocalDateTimeLayout,
	"2006-01-02T15:04",
}

// ParseLocalDateTime accepts RFC 3339 instants (kept in their own offset) or zone-less
// wall-clock readings, which are interpreted in loc.
func ParseLocalDateTime(raw string, loc *time.Location) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date-time")
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	for _, layout := range localDateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q", raw)
}
