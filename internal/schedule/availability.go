package schedule

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnsupportedDuration marks a duration outside the fixed 30/60 minute
// enumeration. Hitting it is a programming defect, not a user error.
var ErrUnsupportedDuration = errors.New("unsupported appointment duration")

// bookableSlots are the generated openings of a working day: two windows,
// 10:00-12:00 and 14:00-17:00, as slot indexes.
var bookableSlots = []Slot{0, 1, 2, 3, 8, 9, 10, 11, 12, 13}

// ForDate produces the bookable half-hour start times of a date. Weekdays get
// the fixed two-window list, weekends are empty. A stand-in for a real
// scheduling backend: deterministic in the date's weekday only.
func ForDate(date time.Time) []string {
	if IsWeekend(date) {
		return nil
	}

	clocks := make([]string, 0, len(bookableSlots))
	for _, s := range bookableSlots {
		clocks = append(clocks, s.Clock())
	}
	return clocks
}

// FilterByDuration keeps only the start times from which an appointment of
// the given duration fits. A 30-minute appointment fits any open slot; a
// 60-minute one needs the following half hour open as well. The result is in
// business-day order regardless of input order.
func FilterByDuration(duration int, availabilities []string) ([]string, error) {
	const op = "schedule.FilterByDuration"

	if duration != 30 && duration != 60 {
		return nil, fmt.Errorf("%s: %w: %d", op, ErrUnsupportedDuration, duration)
	}

	open := slotSet(availabilities)

	var starts []string
	for s := Slot(0); s < SlotsPerDay; s++ {
		if !open[s] {
			continue
		}
		if duration == 60 && !open[s.Next()] {
			continue
		}
		starts = append(starts, s.Clock())
	}
	return starts, nil
}

// IsTimeAvailable reports whether an appointment of the given duration can
// start at clock, under the same contiguous-pair rule as FilterByDuration.
func IsTimeAvailable(clock string, duration int, availabilities []string) (bool, error) {
	const op = "schedule.IsTimeAvailable"

	if duration != 30 && duration != 60 {
		return false, fmt.Errorf("%s: %w: %d", op, ErrUnsupportedDuration, duration)
	}

	s, err := SlotAt(clock)
	if err != nil {
		return false, nil
	}

	open := slotSet(availabilities)
	if !open[s] {
		return false, nil
	}
	if duration == 60 && !open[s.Next()] {
		return false, nil
	}
	return true, nil
}

// slotSet indexes availability clocks by slot; entries that are not valid
// business-hour clocks are ignored.
func slotSet(availabilities []string) map[Slot]bool {
	open := make(map[Slot]bool, len(availabilities))
	for _, clock := range availabilities {
		if s, err := SlotAt(clock); err == nil {
			open[s] = true
		}
	}
	return open
}
