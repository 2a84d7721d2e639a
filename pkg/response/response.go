// Package response builds the dialog-action envelopes returned to the bot
// platform, plus the transport-level error envelope.
package response

import (
	"errors"

	"dialog-service/api"
	"dialog-service/internal/models"
)

type Response struct {
	ResponseError `json:"error,omitzero"`
}

type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

//Error Codes
type ErrCode string

var (
	FAILED_REQUEST ErrCode = "REQUEST_FAILED"
	BAD_REQUEST    ErrCode = "FAILED_TO_DECODE"
)

var (
	ErrBadRequest = errors.New("bad request")
)

func Error(code, msg string) Response {
	return Response{
		ResponseError: ResponseError{
			Code:    code,
			Message: msg,
		},
	}
}

const plainText = "PlainText"

const (
	cardVersion     = 1
	cardContentType = "application/vnd.amazonaws.card.generic"
	maxCardButtons  = 5
)

// ElicitSlot asks the user to (re)fill one slot, keeping the intent in
// progress.
func ElicitSlot(attrs map[string]string, intentName string, slots map[string]*api.Slot, slotToElicit models.SlotName, message string, card *api.ResponseCard) *api.Envelope {
	return &api.Envelope{
		SessionState: api.SessionState{
			SessionAttributes: attrs,
			DialogAction: &api.DialogAction{
				Type:         string(models.ActionElicitSlot),
				SlotToElicit: string(slotToElicit),
			},
			Intent: api.Intent{
				Name:  intentName,
				Slots: slots,
				State: string(models.StateInProgress),
			},
		},
		Messages:     messages(message),
		ResponseCard: card,
	}
}

// ConfirmIntent asks the user to accept the proposed slot values.
func ConfirmIntent(attrs map[string]string, intentName string, slots map[string]*api.Slot, message string, card *api.ResponseCard) *api.Envelope {
	return &api.Envelope{
		SessionState: api.SessionState{
			SessionAttributes: attrs,
			DialogAction:     &api.DialogAction{Type: string(models.ActionConfirmIntent)},
			Intent: api.Intent{
				Name:  intentName,
				Slots: slots,
				State: string(models.StateInProgress),
			},
		},
		Messages:     messages(message),
		ResponseCard: card,
	}
}

// Delegate hands the next step back to the platform unchanged.
func Delegate(attrs map[string]string, intentName string, slots map[string]*api.Slot) *api.Envelope {
	return &api.Envelope{
		SessionState: api.SessionState{
			SessionAttributes: attrs,
			DialogAction:     &api.DialogAction{Type: string(models.ActionDelegate)},
			Intent: api.Intent{
				Name:  intentName,
				Slots: slots,
				State: string(models.StateInProgress),
			},
		},
		Messages: []api.Message{},
	}
}

// Close ends the intent with a final outcome. Slots are no longer meaningful
// once the intent is closed and are dropped from the envelope.
func Close(attrs map[string]string, intentName string, state models.FulfillmentState, msgs ...string) *api.Envelope {
	return &api.Envelope{
		SessionState: api.SessionState{
			SessionAttributes: attrs,
			DialogAction:     &api.DialogAction{Type: string(models.ActionClose)},
			Intent: api.Intent{
				Name:  intentName,
				State: string(state),
			},
		},
		Messages: messages(msgs...),
	}
}

// Card builds a multiple-choice response card, capped at five buttons. A nil
// card is returned when there are no options to offer.
func Card(title, subtitle string, options []api.Button) *api.ResponseCard {
	if len(options) == 0 {
		return nil
	}
	if len(options) > maxCardButtons {
		options = options[:maxCardButtons]
	}

	return &api.ResponseCard{
		Version:     cardVersion,
		ContentType: cardContentType,
		GenericAttachments: []api.GenericAttachment{{
			Title:    title,
			SubTitle: subtitle,
			Buttons:  options,
		}},
	}
}

func messages(msgs ...string) []api.Message {
	out := make([]api.Message, 0, len(msgs))
	for _, m := range msgs {
		if m == "" {
			continue
		}
		out = append(out, api.Message{ContentType: plainText, Content: m})
	}
	return out
}
