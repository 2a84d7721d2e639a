package schedule

import (
	"testing"
	"time"
)

func TestNextHalfHour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"10:00", "10:30"},
		{"10:30", "11:00"},
		{"14:00", "14:30"},
		{"16:30", "17:00"},
	}

	for _, tc := range cases {
		got, err := NextHalfHour(tc.in)
		if err != nil {
			t.Fatalf("NextHalfHour(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("NextHalfHour(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNextHalfHourRejectsOffBoundary(t *testing.T) {
	for _, in := range []string{"10:15", "10:45", "abc", "10"} {
		if _, err := NextHalfHour(in); err == nil {
			t.Errorf("NextHalfHour(%q): expected error", in)
		}
	}
}

func TestClock12Hour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"10:00", "10:00 a.m."},
		{"11:30", "11:30 a.m."},
		{"12:00", "12:00 p.m."},
		{"12:30", "12:30 p.m."},
		{"00:30", "12:30 a.m."},
		{"13:05", "1:05 p.m."},
		{"16:30", "4:30 p.m."},
	}

	for _, tc := range cases {
		got, err := Clock12Hour(tc.in)
		if err != nil {
			t.Fatalf("Clock12Hour(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("Clock12Hour(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeClockZeroPads(t *testing.T) {
	got, err := NormalizeClock("9:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "09:30" {
		t.Errorf("NormalizeClock(9:30) = %q, want 09:30", got)
	}
}

func TestSlotAt(t *testing.T) {
	cases := []struct {
		in   string
		want Slot
	}{
		{"10:00", 0},
		{"10:30", 1},
		{"14:00", 8},
		{"16:30", 13},
	}

	for _, tc := range cases {
		got, err := SlotAt(tc.in)
		if err != nil {
			t.Fatalf("SlotAt(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("SlotAt(%q) = %d, want %d", tc.in, got, tc.want)
		}
		if got.Clock() != tc.in {
			t.Errorf("Slot(%d).Clock() = %q, want %q", got, got.Clock(), tc.in)
		}
	}
}

func TestSlotAtRejectsOutsideBusinessHours(t *testing.T) {
	for _, in := range []string{"09:30", "17:00", "18:00", "10:15"} {
		if _, err := SlotAt(in); err == nil {
			t.Errorf("SlotAt(%q): expected error", in)
		}
	}
}

func TestNormalizeDateRoundTrip(t *testing.T) {
	renderings := []string{
		"2026-03-05",
		"2026/03/05",
		"03/05/2026",
		"3/5/2026",
		"March 5, 2026",
		"Mar 5, 2026",
		"5 March 2026",
	}

	for _, in := range renderings {
		got, err := NormalizeDate(in)
		if err != nil {
			t.Fatalf("NormalizeDate(%q): unexpected error: %v", in, err)
		}
		if got != "2026-03-05" {
			t.Errorf("NormalizeDate(%q) = %q, want 2026-03-05", in, got)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if !IsValidDate("2026-03-05") {
		t.Error("2026-03-05 should be valid")
	}
	for _, in := range []string{"2026-02-30", "not a date", "", "13/45/2026"} {
		if IsValidDate(in) {
			t.Errorf("IsValidDate(%q) = true, want false", in)
		}
	}
}

func TestNextWeekdaysSkipsWeekends(t *testing.T) {
	// 2026-03-06 is a Friday.
	friday := time.Date(2026, time.March, 6, 12, 0, 0, 0, time.UTC)

	days := NextWeekdays(friday, 5)
	if len(days) != 5 {
		t.Fatalf("expected 5 days, got %d", len(days))
	}

	want := []string{"2026-03-09", "2026-03-10", "2026-03-11", "2026-03-12", "2026-03-13"}
	for i, day := range days {
		if day.Format(DateLayout) != want[i] {
			t.Errorf("day %d = %s, want %s", i, day.Format(DateLayout), want[i])
		}
		if IsWeekend(day) {
			t.Errorf("day %d falls on a weekend", i)
		}
	}
}
