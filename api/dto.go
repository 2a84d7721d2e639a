package api

// Event is the bot-platform invocation envelope consumed by the dialog
// resolver. Only the fields the engine reads are modeled; anything else the
// platform sends is ignored on decode.
type Event struct {
	InvocationSource string       `json:"invocationSource"`
	SessionState     SessionState `json:"sessionState"`
}

type SessionState struct {
	SessionAttributes map[string]string `json:"sessionAttributes,omitempty"`
	DialogAction      *DialogAction     `json:"dialogAction,omitempty"`
	Intent            Intent            `json:"intent"`
}

type Intent struct {
	Name  string           `json:"name"`
	Slots map[string]*Slot `json:"slots,omitempty"`
	State string           `json:"state,omitempty"`
}

type Slot struct {
	Value SlotValue `json:"value"`
}

type SlotValue struct {
	InterpretedValue string `json:"interpretedValue"`
}

type DialogAction struct {
	Type         string `json:"type"`
	SlotToElicit string `json:"slotToElicit,omitempty"`
}

// Envelope is the response returned to the platform: the updated session
// state, exactly one dialog action, plain-text messages and an optional card.
type Envelope struct {
	SessionState SessionState  `json:"sessionState"`
	Messages     []Message     `json:"messages"`
	ResponseCard *ResponseCard `json:"responseCard,omitempty"`
}

type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type ResponseCard struct {
	Version            int                 `json:"version"`
	ContentType        string              `json:"contentType"`
	GenericAttachments []GenericAttachment `json:"genericAttachments"`
}

type GenericAttachment struct {
	Title    string   `json:"title"`
	SubTitle string   `json:"subTitle"`
	Buttons  []Button `json:"buttons,omitempty"`
}

type Button struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

// SlotValue returns the interpreted value of a named slot, or nil when the
// slot is absent or not yet filled.
func (e *Event) SlotValue(name string) *string {
	slot, ok := e.SessionState.Intent.Slots[name]
	if !ok || slot == nil {
		return nil
	}
	v := slot.Value.InterpretedValue
	return &v
}

// Attributes returns a mutable copy of the session attribute bag, never nil.
func (e *Event) Attributes() map[string]string {
	attrs := make(map[string]string, len(e.SessionState.SessionAttributes))
	for k, v := range e.SessionState.SessionAttributes {
		attrs[k] = v
	}
	return attrs
}

// Slots returns a mutable copy of the intent's slot map, never nil.
func (e *Event) Slots() map[string]*Slot {
	slots := make(map[string]*Slot, len(e.SessionState.Intent.Slots))
	for k, v := range e.SessionState.Intent.Slots {
		slots[k] = v
	}
	return slots
}

// FilledSlot wraps a raw value in the slot shape the platform expects.
func FilledSlot(value string) *Slot {
	return &Slot{Value: SlotValue{InterpretedValue: value}}
}
