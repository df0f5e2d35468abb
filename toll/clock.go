// SPDX-License-Identifier: MIT

package toll

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidClock reports a time of day that is not HH:MM:SS within a day.
var ErrInvalidClock = errors.New("toll: invalid clock time")

// ErrInvalidWeekday reports an unknown weekday name.
var ErrInvalidWeekday = errors.New("toll: invalid weekday")

const clockLayout = "15:04:05"

// EndOfDay is the last representable second of a day, 23:59:59.
const EndOfDay = Clock(24*60*60 - 1)

// Clock is a time of day with second resolution, counted from 00:00:00.
type Clock int

// NewClock builds a Clock from hour, minute and second.
func NewClock(h, m, s int) (Clock, error) {
	if h < 0 || h > 23 || m < 0 || m > 59 || s < 0 || s > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d:%02d", ErrInvalidClock, h, m, s)
	}

	return Clock(h*3600 + m*60 + s), nil
}

// MustClock is NewClock for constants; it panics on invalid input.
func MustClock(h, m, s int) Clock {
	c, err := NewClock(h, m, s)
	if err != nil {
		panic(err)
	}

	return c
}

// ParseClock parses "HH:MM:SS".
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	return NewClock(t.Hour(), t.Minute(), t.Second())
}

// String formats the clock as HH:MM:SS.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(c)/3600, int(c)%3600/60, int(c)%60)
}

// UnmarshalYAML decodes a "HH:MM:SS" scalar.
func (c *Clock) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed

	return nil
}

// MarshalYAML encodes the clock as a "HH:MM:SS" scalar.
func (c Clock) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// week is the schedule output order, Monday first.
var week = [7]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// Week returns the weekdays in schedule output order, Monday first.
// The slice is a fresh copy on every call.
func Week() []time.Weekday {
	return slices.Clone(week[:])
}

// ParseWeekday accepts full English names or three-letter abbreviations, any case.
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, d := range week {
		full := strings.ToLower(d.String())
		if name == full || (len(name) == 3 && strings.HasPrefix(full, name)) {
			return d, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}
