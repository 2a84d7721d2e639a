package dialog

import (
	"fmt"
	"time"

	"dialog-service/api"
	"dialog-service/internal/models"
	"dialog-service/internal/schedule"
)

const dateOptionCount = 5

// slotOptions builds the button choices offered for a slot's response card.
// Returns nil when no sensible options exist (the card is then omitted).
func (r *Resolver) slotOptions(
	slot models.SlotName,
	appointmentType, date *string,
	store schedule.Store,
	today time.Time,
) []api.Button {
	switch slot {
	case models.SlotAppointmentType:
		return []api.Button{
			{Text: "cleaning (30 min)", Value: "cleaning"},
			{Text: "root canal (60 min)", Value: "root canal"},
			{Text: "whitening (30 min)", Value: "whitening"},
		}

	case models.SlotDate:
		options := make([]api.Button, 0, dateOptionCount)
		for _, day := range schedule.NextWeekdays(today, dateOptionCount) {
			options = append(options, api.Button{
				Text:  fmt.Sprintf("%d-%d (%s)", int(day.Month()), day.Day(), day.Format("Mon")),
				Value: day.Format(schedule.DateLayout),
			})
		}
		return options

	case models.SlotTime:
		return r.timeOptions(appointmentType, date, store)
	}

	return nil
}

// timeOptions offers the duration-filtered openings recorded for the date.
// Both type and date must be known, and the store must already hold an entry
// under the canonical date key.
func (r *Resolver) timeOptions(appointmentType, date *string, store schedule.Store) []api.Button {
	if appointmentType == nil || date == nil {
		return nil
	}

	canonical, err := schedule.NormalizeDate(*date)
	if err != nil {
		return nil
	}
	availabilities, ok := store.Availabilities(canonical)
	if !ok || len(availabilities) == 0 {
		return nil
	}

	duration, ok := models.Duration(*appointmentType)
	if !ok {
		return nil
	}
	openings, err := schedule.FilterByDuration(duration, availabilities)
	if err != nil || len(openings) == 0 {
		return nil
	}

	options := make([]api.Button, 0, len(openings))
	for _, clock := range openings {
		formatted, err := schedule.Clock12Hour(clock)
		if err != nil {
			continue
		}
		options = append(options, api.Button{Text: formatted, Value: clock})
	}
	return options
}
