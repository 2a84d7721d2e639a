package models

import "strings"

const IntentMakeAppointment = "MakeAppointment"

type InvocationSource string

const (
	SourceDialogCodeHook      InvocationSource = "DialogCodeHook"
	SourceFulfillmentCodeHook InvocationSource = "FulfillmentCodeHook"
)

type SlotName string

const (
	SlotAppointmentType SlotName = "AppointmentType"
	SlotDate            SlotName = "Date"
	SlotTime            SlotName = "Time"
)

type ActionType string

const (
	ActionElicitSlot    ActionType = "ElicitSlot"
	ActionConfirmIntent ActionType = "ConfirmIntent"
	ActionDelegate      ActionType = "Delegate"
	ActionClose         ActionType = "Close"
)

type FulfillmentState string

const (
	StateInProgress FulfillmentState = "InProgress"
	StateFulfilled  FulfillmentState = "Fulfilled"
	StateFailed     FulfillmentState = "Failed"
)

// Appointment durations in minutes. The enumeration is fixed; anything the
// caller sends outside it is a validation failure, not a new type.
var appointmentDurations = map[string]int{
	"cleaning":   30,
	"root canal": 60,
	"whitening":  30,
}

// Duration maps an appointment type to its length in minutes,
// case-insensitively. ok is false for unknown types.
func Duration(appointmentType string) (minutes int, ok bool) {
	minutes, ok = appointmentDurations[strings.ToLower(appointmentType)]
	return minutes, ok
}
