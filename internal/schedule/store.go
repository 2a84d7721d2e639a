package schedule

import (
	"encoding/json"
	"fmt"
)

// Store is the session-scoped availability map: canonical YYYY-MM-DD date to
// ordered open start times. It lives only inside the session attribute bag as
// a JSON blob; every key is the normalized date, never the caller's raw
// rendering.
type Store map[string][]string

// LoadStore decodes the availability blob from the session attributes. A
// missing or empty attribute yields an empty store.
func LoadStore(attrs map[string]string, key string) (Store, error) {
	const op = "schedule.LoadStore"

	blob, ok := attrs[key]
	if !ok || blob == "" {
		return Store{}, nil
	}

	var store Store
	if err := json.Unmarshal([]byte(blob), &store); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return store, nil
}

// Encode serializes the store for the session attribute bag.
func (s Store) Encode() (string, error) {
	const op = "schedule.Store.Encode"

	blob, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(blob), nil
}

// Availabilities returns the open start times recorded for a canonical date.
func (s Store) Availabilities(date string) ([]string, bool) {
	avail, ok := s[date]
	return avail, ok
}

// Put records the open start times for a canonical date.
func (s Store) Put(date string, availabilities []string) {
	s[date] = availabilities
}

// Book removes the booked start time from a date's openings, and for a
// 60-minute appointment the following half hour as well. Missing targets are
// tolerated: the store is ephemeral best-effort state, not a ledger.
func (s Store) Book(date, clock string, duration int) {
	avail, ok := s[date]
	if !ok || len(avail) == 0 {
		return
	}

	avail = remove(avail, clock)
	if duration == 60 {
		if next, err := NextHalfHour(clock); err == nil {
			avail = remove(avail, next)
		}
	}
	s[date] = avail
}

func remove(clocks []string, clock string) []string {
	out := clocks[:0]
	for _, c := range clocks {
		if c != clock {
			out = append(out, c)
		}
	}
	return out
}
