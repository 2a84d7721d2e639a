// Package schedule holds the time arithmetic, availability generation and the
// session-scoped availability store behind the dialog resolver. Times cross
// the package boundary as "HH:MM" strings and dates as "YYYY-MM-DD"; inside,
// times are half-hour slot indexes over the business day so there is no
// string arithmetic.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	OpeningHour = 10
	ClosingHour = 17

	// SlotsPerDay is the number of half-hour starts between opening and
	// closing, bookable or not.
	SlotsPerDay = (ClosingHour - OpeningHour) * 2
)

const DateLayout = "2006-01-02"

// Slot is a half-hour index within the business day: 0 is 10:00, 1 is 10:30,
// up to SlotsPerDay-1 for 16:30.
type Slot int

// SlotAt converts a "HH:MM" clock within business hours to its slot index.
func SlotAt(clock string) (Slot, error) {
	const op = "schedule.SlotAt"

	hour, minute, err := splitClock(clock)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if minute != 0 && minute != 30 {
		return 0, fmt.Errorf("%s: %q is not on a half-hour boundary", op, clock)
	}
	if hour < OpeningHour || hour >= ClosingHour {
		return 0, fmt.Errorf("%s: %q is outside business hours", op, clock)
	}

	s := Slot((hour-OpeningHour)*2 + minute/30)
	return s, nil
}

// Next is the following half-hour boundary.
func (s Slot) Next() Slot { return s + 1 }

func (s Slot) Clock() string {
	return fmt.Sprintf("%02d:%02d", OpeningHour+int(s)/2, int(s)%2*30)
}

// NextHalfHour advances a "HH:MM" clock by thirty minutes. The minute part
// must already be 00 or 30; the hour may be any hour of the day.
func NextHalfHour(clock string) (string, error) {
	const op = "schedule.NextHalfHour"

	hour, minute, err := splitClock(clock)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if minute == 30 {
		return fmt.Sprintf("%02d:00", hour+1), nil
	}
	if minute == 0 {
		return fmt.Sprintf("%02d:30", hour), nil
	}
	return "", fmt.Errorf("%s: %q is not on a half-hour boundary", op, clock)
}

// NormalizeClock re-renders a "HH:MM" clock zero-padded.
func NormalizeClock(clock string) (string, error) {
	const op = "schedule.NormalizeClock"

	hour, minute, err := splitClock(clock)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// Clock12Hour renders a 24h "HH:MM" clock as a 12-hour string with a.m./p.m.
// Noon stays 12 p.m. and midnight renders as 12 a.m.
func Clock12Hour(clock string) (string, error) {
	const op = "schedule.Clock12Hour"

	hour, minute, err := splitClock(clock)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	switch {
	case hour > 12:
		return fmt.Sprintf("%d:%02d p.m.", hour-12, minute), nil
	case hour == 12:
		return fmt.Sprintf("12:%02d p.m.", minute), nil
	case hour == 0:
		return fmt.Sprintf("12:%02d a.m.", minute), nil
	default:
		return fmt.Sprintf("%d:%02d a.m.", hour, minute), nil
	}
}

func splitClock(clock string) (hour, minute int, err error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid clock %q", clock)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock %q", clock)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock %q", clock)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid clock %q", clock)
	}

	return hour, minute, nil
}

// dateLayouts are the calendar renderings accepted from callers, canonical
// form first.
var dateLayouts = []string{
	DateLayout,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	"2 January 2006",
	"02 Jan 2006",
}

// ParseDate parses any accepted calendar rendering into a date.
func ParseDate(s string) (time.Time, error) {
	const op = "schedule.ParseDate"

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%s: unrecognized date %q", op, s)
}

// IsValidDate reports whether s parses to a real calendar date.
func IsValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// NormalizeDate re-renders any accepted calendar rendering as YYYY-MM-DD.
func NormalizeDate(s string) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}

// IsWeekend reports whether the date falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// NextWeekdays returns the next n weekdays strictly after from.
func NextWeekdays(from time.Time, n int) []time.Time {
	days := make([]time.Time, 0, n)
	day := from
	for len(days) < n {
		day = day.AddDate(0, 0, 1)
		if !IsWeekend(day) {
			days = append(days, day)
		}
	}
	return days
}
