package schedule

import (
	"errors"
	"slices"
	"testing"
	"time"
)

var weekdayClocks = []string{
	"10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
}

func TestForDateWeekday(t *testing.T) {
	// Mon 2026-03-02 through Fri 2026-03-06.
	for day := 2; day <= 6; day++ {
		date := time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
		got := ForDate(date)
		if !slices.Equal(got, weekdayClocks) {
			t.Errorf("ForDate(%s) = %v, want %v", date.Weekday(), got, weekdayClocks)
		}
	}
}

func TestForDateWeekend(t *testing.T) {
	for _, day := range []int{7, 8} {
		date := time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
		if got := ForDate(date); len(got) != 0 {
			t.Errorf("ForDate(%s) = %v, want empty", date.Weekday(), got)
		}
	}
}

func TestFilterByDurationThirtyKeepsAll(t *testing.T) {
	got, err := FilterByDuration(30, weekdayClocks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(got, weekdayClocks) {
		t.Errorf("FilterByDuration(30) = %v, want %v", got, weekdayClocks)
	}
}

func TestFilterByDurationSixtyNeedsContiguousPair(t *testing.T) {
	got, err := FilterByDuration(60, weekdayClocks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 11:30 needs 12:00 and 16:30 needs 17:00, both outside the windows.
	want := []string{"10:00", "10:30", "11:00", "14:00", "14:30", "15:00", "15:30", "16:00"}
	if !slices.Equal(got, want) {
		t.Errorf("FilterByDuration(60) = %v, want %v", got, want)
	}

	// Every returned start has its successor half hour open.
	for _, start := range got {
		next, err := NextHalfHour(start)
		if err != nil {
			t.Fatalf("NextHalfHour(%q): %v", start, err)
		}
		if !slices.Contains(weekdayClocks, next) {
			t.Errorf("start %q returned without open successor %q", start, next)
		}
	}
}

func TestFilterByDurationOrdersUnorderedInput(t *testing.T) {
	got, err := FilterByDuration(30, []string{"16:00", "10:30", "14:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"10:30", "14:00", "16:00"}
	if !slices.Equal(got, want) {
		t.Errorf("FilterByDuration = %v, want %v", got, want)
	}
}

func TestFilterByDurationRejectsUnknownDuration(t *testing.T) {
	for _, duration := range []int{0, 15, 45, 90} {
		_, err := FilterByDuration(duration, weekdayClocks)
		if !errors.Is(err, ErrUnsupportedDuration) {
			t.Errorf("FilterByDuration(%d): got %v, want ErrUnsupportedDuration", duration, err)
		}
	}
}

func TestIsTimeAvailable(t *testing.T) {
	cases := []struct {
		clock    string
		duration int
		want     bool
	}{
		{"10:00", 30, true},
		{"12:00", 30, false},
		{"16:00", 60, true},
		{"16:30", 60, false},
		{"11:30", 60, false},
		{"18:00", 30, false},
	}

	for _, tc := range cases {
		got, err := IsTimeAvailable(tc.clock, tc.duration, weekdayClocks)
		if err != nil {
			t.Fatalf("IsTimeAvailable(%q, %d): unexpected error: %v", tc.clock, tc.duration, err)
		}
		if got != tc.want {
			t.Errorf("IsTimeAvailable(%q, %d) = %v, want %v", tc.clock, tc.duration, got, tc.want)
		}
	}

	if _, err := IsTimeAvailable("10:00", 45, weekdayClocks); !errors.Is(err, ErrUnsupportedDuration) {
		t.Errorf("duration 45: got %v, want ErrUnsupportedDuration", err)
	}
}
