// Package validate checks the booking slots a caller has filled so far.
// Unset slots are skipped, not failed; the first violation wins, checked in a
// fixed order: appointment type, then time, then date.
package validate

import (
	"strconv"
	"strings"
	"time"

	"dialog-service/internal/models"
	"dialog-service/internal/schedule"
)

const (
	MsgUnknownType     = "I did not recognize that, can I book you a root canal, cleaning, or whitening?"
	MsgTimeFormat      = "Please provide time in HH:MM format (e.g., 10:30)"
	MsgTimeNotNumeric  = "Please provide a valid time in HH:MM format (e.g., 10:30)"
	MsgBusinessHours   = "Our business hours are from 10:00 AM to 5:00 PM. What time works best for you?"
	MsgHalfHourOnly    = "We schedule appointments every half hour (XX:00 or XX:30). What time works best for you?"
	MsgDateNotADate    = "I did not understand that, what date works best for you?"
	MsgDateLeadTime    = "Appointments must be scheduled a day in advance. Can you try a different date?"
	MsgWeekendDate     = "Our office is not open on the weekends, can you provide a work day?"
)

// Result is the outcome of a validation pass: either Valid, or the first
// violated slot with its corrective user-facing message.
type Result struct {
	Valid        bool
	ViolatedSlot models.SlotName
	Message      string
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(slot models.SlotName, message string) Result {
	return Result{ViolatedSlot: slot, Message: message}
}

// Slots validates whichever of the three booking slots are present. today is
// the current date in the engine's timezone; appointments need at least one
// day of lead time.
func Slots(appointmentType, date, clock *string, today time.Time) Result {
	if appointmentType != nil {
		if _, ok := models.Duration(*appointmentType); !ok {
			return invalid(models.SlotAppointmentType, MsgUnknownType)
		}
	}

	if clock != nil {
		if res := validTime(*clock); !res.Valid {
			return res
		}
	}

	if date != nil {
		if res := validDate(*date, today); !res.Valid {
			return res
		}
	}

	return valid()
}

func validTime(clock string) Result {
	if len(clock) != 5 {
		return invalid(models.SlotTime, MsgTimeFormat)
	}

	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return invalid(models.SlotTime, MsgTimeFormat)
	}

	hour, errH := strconv.Atoi(parts[0])
	minute, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil {
		return invalid(models.SlotTime, MsgTimeNotNumeric)
	}

	if hour < 10 || hour > 16 {
		return invalid(models.SlotTime, MsgBusinessHours)
	}
	if minute != 0 && minute != 30 {
		return invalid(models.SlotTime, MsgHalfHourOnly)
	}

	return valid()
}

func validDate(date string, today time.Time) Result {
	if !schedule.IsValidDate(date) {
		return invalid(models.SlotDate, MsgDateNotADate)
	}

	parsed, err := schedule.ParseDate(date)
	if err != nil {
		return invalid(models.SlotDate, MsgDateNotADate)
	}

	day := parsed.Format(schedule.DateLayout)
	if day <= today.Format(schedule.DateLayout) {
		return invalid(models.SlotDate, MsgDateLeadTime)
	}
	if schedule.IsWeekend(parsed) {
		return invalid(models.SlotDate, MsgWeekendDate)
	}

	return valid()
}
