package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Clock is a time of day expressed as minutes since midnight.
// It is the comparable form of the "HH:MM" strings used everywhere at
// the edges (prompt, model response, persisted documents).
type Clock int

// ParseClock parses "HH:MM" (hour 0-23, minute 0-59) into a Clock.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: bad hour: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: bad minute: %w", s, err)
	}

	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid time %q: hour out of range", s)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q: minute out of range", s)
	}

	return Clock(hour*60 + minute), nil
}

// String formats the clock back as zero-padded "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Hour returns the hour component (0-23).
func (c Clock) Hour() int { return int(c) / 60 }

// Minute returns the minute component (0-59).
func (c Clock) Minute() int { return int(c) % 60 }

// Minutes returns the total minutes since midnight.
func (c Clock) Minutes() int { return int(c) }

// MarshalJSON encodes the clock as an "HH:MM" string.
func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes an "HH:MM" string into the clock.
func (c *Clock) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
