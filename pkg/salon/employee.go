package salon

import (
	"fmt"
	"time"
)

// DefaultColor is the calendar color used when none was chosen.
const DefaultColor = "#3B82F6"

// Weekdays lists the working-hours keys in calendar order.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

type Employee struct {
	ID           int64                 `json:"id"`
	BusinessID   int64                 `json:"business_id"`
	Name         string                `json:"name"`
	Email        string                `json:"email"`
	Phone        *string               `json:"phone,omitempty"`
	Role         string                `json:"role"`
	Specialty    *string               `json:"specialty,omitempty"`
	Color        string                `json:"color"`
	PhotoURL     *string               `json:"photo_url,omitempty"`
	IsActive     bool                  `json:"is_active"`
	WorkingHours map[string]WorkingDay `json:"working_hours,omitempty"`
	TimeOff      []TimeOff             `json:"time_off,omitempty"`
}

// ColorOrDefault returns the employee color, falling back to DefaultColor.
func (e Employee) ColorOrDefault() string {
	if e.Color == "" {
		return DefaultColor
	}
	return e.Color
}

// WorkingDay is one weekday entry of an employee's working hours, times as "HH:MM".
type WorkingDay struct {
	Available  bool    `json:"available"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
}

// Validate checks clock formats and ordering for an available day.
func (d WorkingDay) Validate() error {
	if !d.Available {
		return nil
	}
	start, err := parseClock(d.Start)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	end, err := parseClock(d.End)
	if err != nil {
		return fmt.Errorf("end: %w", err)
	}
	if !end.After(start) {
		return fmt.Errorf("end %s must be after start %s", d.End, d.Start)
	}
	if d.BreakStart == nil && d.BreakEnd == nil {
		return nil
	}
	if d.BreakStart == nil || d.BreakEnd == nil {
		return fmt.Errorf("break needs both start and end")
	}
	bs, err := parseClock(*d.BreakStart)
	if err != nil {
		return fmt.Errorf("break_start: %w", err)
	}
	be, err := parseClock(*d.BreakEnd)
	if err != nil {
		return fmt.Errorf("break_end: %w", err)
	}
	if bs.Before(start) || be.After(end) || !be.After(bs) {
		return fmt.Errorf("break %s-%s must sit inside %s-%s", *d.BreakStart, *d.BreakEnd, d.Start, d.End)
	}
	return nil
}

// TimeOff is a leave entry; dates are "YYYY-MM-DD".
type TimeOff struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}

// Covers reports whether the entry spans the given calendar day (inclusive).
func (t TimeOff) Covers(day time.Time) bool {
	start, err := time.Parse(time.DateOnly, t.StartDate)
	if err != nil {
		return false
	}
	end, err := time.Parse(time.DateOnly, t.EndDate)
	if err != nil {
		return false
	}
	d, _ := time.Parse(time.DateOnly, day.Format(time.DateOnly))
	return !d.Before(start) && !d.After(end)
}

func parseClock(value string) (time.Time, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM", value)
	}
	return t, nil
}
