// Package dialog decides the next dialog action for the appointment-booking
// intent. The resolver is a pure function of the incoming event: it reads the
// availability store out of the session attributes, resolves one action, and
// returns an envelope carrying the (possibly updated) attributes back to the
// caller. No state survives outside the envelope.
package dialog

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dialog-service/api"
	"dialog-service/internal/models"
	"dialog-service/internal/schedule"
	"dialog-service/internal/validate"
	"dialog-service/pkg/response"
	"dialog-service/pkg/sl"
)

// FormattedTimeAttr is the session attribute carrying the 12-hour rendering
// of the requested time, for downstream message renderers.
const FormattedTimeAttr = "formattedTime"

const (
	msgAskType           = "What type of appointment would you like to schedule?"
	msgNoAvailability    = "We do not have any availability on that date, is there another day which works for you?"
	msgDateUnparseable   = "I had trouble understanding that date. Please provide a date in YYYY-MM-DD format."
	msgTimeUnavailable   = "The time you requested is not available. "
	msgMissingSlots      = "Please provide all required information: appointment type, date, and time."
	msgBookingBroken     = "I encountered an error while trying to book your appointment. Please try again with a valid date and time."
	msgBookingFallback   = "I apologize, but I was unable to book your appointment. Please try again with a different time or date, or contact our office directly at (555) 123-4567 for assistance."
)

type Resolver struct {
	log      *slog.Logger
	loc      *time.Location
	storeKey string
	now      func() time.Time
}

func New(log *slog.Logger, loc *time.Location, storeKey string) *Resolver {
	return &Resolver{
		log:      log,
		loc:      loc,
		storeKey: storeKey,
		now:      time.Now,
	}
}

// dialogState is the collection stage derived from which slots are filled.
// There is no persisted state field; slot presence is the state.
//
//	type unset            -> stateCollectType
//	type set, date unset  -> stateCollectDate
//	type and date set     -> stateCollectTime (time may or may not be set)
type dialogState int

const (
	stateCollectType dialogState = iota
	stateCollectDate
	stateCollectTime
)

func stateOf(appointmentType, date *string) dialogState {
	switch {
	case appointmentType == nil:
		return stateCollectType
	case date == nil:
		return stateCollectDate
	default:
		return stateCollectTime
	}
}

// Resolve produces exactly one dialog action for the event. Errors are
// engine defects (corrupt store blob, impossible duration); every user
// mistake resolves into an action instead.
func (r *Resolver) Resolve(event *api.Event) (*api.Envelope, error) {
	const op = "dialog.Resolve"

	log := r.log.With(
		slog.String("op", op),
		slog.String("source", event.InvocationSource),
	)

	intentName := event.SessionState.Intent.Name
	if intentName == "" {
		intentName = models.IntentMakeAppointment
	}

	attrs := event.Attributes()
	slots := event.Slots()

	appointmentType := event.SlotValue(string(models.SlotAppointmentType))
	date := event.SlotValue(string(models.SlotDate))
	clock := event.SlotValue(string(models.SlotTime))

	log.Debug("resolving dialog turn",
		slog.Any("appointment_type", appointmentType),
		slog.Any("date", date),
		slog.Any("time", clock),
	)

	store, err := schedule.LoadStore(attrs, r.storeKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	switch models.InvocationSource(event.InvocationSource) {
	case models.SourceDialogCodeHook:
		return r.resolveDialog(log, intentName, attrs, slots, store, appointmentType, date, clock)
	case models.SourceFulfillmentCodeHook:
		return r.fulfill(log, intentName, attrs, store, appointmentType, date, clock), nil
	default:
		log.Debug("unhandled invocation source, delegating")
		return response.Delegate(attrs, intentName, slots), nil
	}
}

// resolveDialog walks the collection state machine for a DialogCodeHook turn.
// Validation repair always wins: a bad slot value is cleared and re-elicited
// before any progression.
func (r *Resolver) resolveDialog(
	log *slog.Logger,
	intentName string,
	attrs map[string]string,
	slots map[string]*api.Slot,
	store schedule.Store,
	appointmentType, date, clock *string,
) (*api.Envelope, error) {
	today := r.now().In(r.loc)

	if res := validate.Slots(appointmentType, date, clock, today); !res.Valid {
		log.Info("slot validation failed",
			slog.String("slot", string(res.ViolatedSlot)),
			slog.String("message", res.Message),
		)
		slots[string(res.ViolatedSlot)] = nil
		card := response.Card(
			"Specify "+string(res.ViolatedSlot),
			res.Message,
			r.slotOptions(res.ViolatedSlot, appointmentType, date, store, today),
		)
		return response.ElicitSlot(attrs, intentName, slots, res.ViolatedSlot, res.Message, card), nil
	}

	switch stateOf(appointmentType, date) {
	case stateCollectType:
		card := response.Card("Specify Appointment Type", msgAskType,
			r.slotOptions(models.SlotAppointmentType, nil, nil, store, today))
		return response.ElicitSlot(attrs, intentName, slots, models.SlotAppointmentType, msgAskType, card), nil

	case stateCollectDate:
		msg := fmt.Sprintf("When would you like to schedule your %s?", *appointmentType)
		card := response.Card("Specify Date", msg,
			r.slotOptions(models.SlotDate, appointmentType, nil, store, today))
		return response.ElicitSlot(attrs, intentName, slots, models.SlotDate, msg, card), nil

	default:
		return r.resolveTime(log, intentName, attrs, slots, store, *appointmentType, *date, clock, today)
	}
}

// resolveTime handles the type-and-date-set stage: look up or generate the
// date's availability, then delegate, confirm the only option, or elicit a
// time. An exhausted date backtracks to date collection.
func (r *Resolver) resolveTime(
	log *slog.Logger,
	intentName string,
	attrs map[string]string,
	slots map[string]*api.Slot,
	store schedule.Store,
	appointmentType, date string,
	clock *string,
	today time.Time,
) (*api.Envelope, error) {
	const op = "dialog.resolveTime"

	canonical, err := schedule.NormalizeDate(date)
	if err != nil {
		// The validator accepted the date, so this should be unreachable;
		// repair rather than fail if it ever happens.
		log.Error("validated date failed to normalize", sl.Err(err), slog.String("date", date))
		slots[string(models.SlotDate)] = nil
		return response.ElicitSlot(attrs, intentName, slots, models.SlotDate, msgDateUnparseable,
			response.Card("Specify Date", msgDateUnparseable,
				r.slotOptions(models.SlotDate, &appointmentType, nil, store, today))), nil
	}
	slots[string(models.SlotDate)] = api.FilledSlot(canonical)

	parsed, _ := schedule.ParseDate(canonical)
	availabilities, ok := store.Availabilities(canonical)
	if !ok {
		availabilities = schedule.ForDate(parsed)
		if len(availabilities) > 0 {
			store.Put(canonical, availabilities)
			if err := r.saveStore(attrs, store); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}
		log.Debug("generated availabilities",
			slog.String("date", canonical),
			slog.Int("count", len(availabilities)),
		)
	}

	duration, _ := models.Duration(appointmentType)
	openings, err := schedule.FilterByDuration(duration, availabilities)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(openings) == 0 {
		log.Info("no availability, backtracking to date", slog.String("date", canonical))
		slots[string(models.SlotDate)] = nil
		slots[string(models.SlotTime)] = nil
		card := response.Card("Specify Date", "What day works best for you?",
			r.slotOptions(models.SlotDate, &appointmentType, nil, store, today))
		return response.ElicitSlot(attrs, intentName, slots, models.SlotDate, msgNoAvailability, card), nil
	}

	prefix := fmt.Sprintf("What time on %s works for you? ", canonical)
	if clock != nil {
		normalized, err := schedule.NormalizeClock(*clock)
		if err == nil {
			if formatted, ferr := schedule.Clock12Hour(normalized); ferr == nil {
				attrs[FormattedTimeAttr] = formatted
			}
			available, aerr := schedule.IsTimeAvailable(normalized, duration, availabilities)
			if aerr != nil {
				return nil, fmt.Errorf("%s: %w", op, aerr)
			}
			if available {
				slots[string(models.SlotTime)] = api.FilledSlot(normalized)
				return response.Delegate(attrs, intentName, slots), nil
			}
			prefix = msgTimeUnavailable
		}
	}

	if len(openings) == 1 {
		only := openings[0]
		formatted, _ := schedule.Clock12Hour(only)
		slots[string(models.SlotTime)] = api.FilledSlot(only)
		msg := fmt.Sprintf("%s%s is our only availability, does that work for you?", prefix, formatted)
		card := response.Card("Confirm Appointment",
			fmt.Sprintf("Is %s on %s okay?", formatted, canonical),
			[]api.Button{{Text: "yes", Value: "yes"}, {Text: "no", Value: "no"}})
		return response.ConfirmIntent(attrs, intentName, slots, msg, card), nil
	}

	card := response.Card("Specify Time", "What time works best for you?",
		r.slotOptions(models.SlotTime, &appointmentType, &canonical, store, today))
	return response.ElicitSlot(attrs, intentName, slots, models.SlotTime,
		prefix+availableTimeSummary(openings), card), nil
}

// fulfill books the appointment: best-effort removal of the booked start
// times from the store, then a Close with the outcome. Failed closes always
// carry the fallback contact message.
func (r *Resolver) fulfill(
	log *slog.Logger,
	intentName string,
	attrs map[string]string,
	store schedule.Store,
	appointmentType, date, clock *string,
) *api.Envelope {
	if appointmentType == nil || date == nil || clock == nil {
		log.Info("fulfillment requested with missing slots")
		return response.Close(attrs, intentName, models.StateFailed, msgMissingSlots, msgBookingFallback)
	}

	normalized, errTime := schedule.NormalizeClock(*clock)
	canonical, errDate := schedule.NormalizeDate(*date)
	duration, knownType := models.Duration(*appointmentType)
	if errTime != nil || errDate != nil || !knownType {
		log.Error("could not interpret booking slots",
			slog.String("appointment_type", *appointmentType),
			slog.String("date", *date),
			slog.String("time", *clock),
		)
		return response.Close(attrs, intentName, models.StateFailed, msgBookingBroken, msgBookingFallback)
	}

	if availabilities, ok := store.Availabilities(canonical); ok && len(availabilities) > 0 {
		store.Book(canonical, normalized, duration)
		if err := r.saveStore(attrs, store); err != nil {
			log.Error("failed to persist availability store", sl.Err(err))
		}
	} else {
		log.Debug("availabilities were empty at fulfillment time", slog.String("date", canonical))
	}

	formatted, err := schedule.Clock12Hour(normalized)
	if err != nil {
		formatted = normalized
	}

	log.Info("appointment booked",
		slog.String("appointment_type", *appointmentType),
		slog.String("date", canonical),
		slog.String("time", normalized),
	)

	return response.Close(attrs, intentName, models.StateFulfilled,
		fmt.Sprintf("Okay, I have booked your %s appointment. We will see you at %s on %s",
			strings.ToLower(*appointmentType), formatted, canonical))
}

// availableTimeSummary lists the first openings with a quantity-aware prefix.
// Callers guarantee at least two openings.
func availableTimeSummary(openings []string) string {
	prefix := "We have availabilities at "
	if len(openings) > 3 {
		prefix = "We have plenty of availability, including "
	}

	first, _ := schedule.Clock12Hour(openings[0])
	second, _ := schedule.Clock12Hour(openings[1])
	if len(openings) == 2 {
		return fmt.Sprintf("%s%s and %s", prefix, first, second)
	}

	third, _ := schedule.Clock12Hour(openings[2])
	return fmt.Sprintf("%s%s, %s and %s", prefix, first, second, third)
}

func (r *Resolver) saveStore(attrs map[string]string, store schedule.Store) error {
	blob, err := store.Encode()
	if err != nil {
		return err
	}
	attrs[r.storeKey] = blob
	return nil
}
