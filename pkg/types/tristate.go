package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TriState models consent-style flags where "never asked" must stay distinct from "declined".
// The zero value is Unknown, so a field absent from the payload decodes as Unknown.
type TriState uint8

const (
	TriStateUnknown TriState = iota
	TriStateYes
	TriStateNo
)

// TriStateOf lifts a plain bool into a known TriState.
func TriStateOf(v bool) TriState {
	if v {
		return TriStateYes
	}
	return TriStateNo
}

// TriStateFromPtr maps nil to Unknown.
func TriStateFromPtr(v *bool) TriState {
	if v == nil {
		return TriStateUnknown
	}
	return TriStateOf(*v)
}

func (t TriState) IsKnown() bool {
	return t == TriStateYes || t == TriStateNo
}

// IsYes is true only for an explicit yes; Unknown never reads as consent.
func (t TriState) IsYes() bool {
	return t == TriStateYes
}

// IsNo is true only for an explicit no; Unknown never reads as declined.
func (t TriState) IsNo() bool {
	return t == TriStateNo
}

func (t TriState) String() string {
	switch t {
	case TriStateYes:
		return "yes"
	case TriStateNo:
		return "no"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the state as "yes", "no" or "unknown".
func (t TriState) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts booleans, null and the rendered string forms.
func (t *TriState) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch string(trimmed) {
	case "", "null":
		*t = TriStateUnknown
		return nil
	case "true":
		*t = TriStateYes
		return nil
	case "false":
		*t = TriStateNo
		return nil
	}

	var raw string
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return fmt.Errorf("tri-state: %w", err)
	}
	switch raw {
	case "yes":
		*t = TriStateYes
	case "no":
		*t = TriStateNo
	case "unknown", "":
		*t = TriStateUnknown
	default:
		return fmt.Errorf("tri-state: unsupported value %q", raw)
	}
	return nil
}
