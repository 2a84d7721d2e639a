package resolve

import (
	"log/slog"
	"net/http"

	"dialog-service/api"
	"dialog-service/pkg/response"
	"dialog-service/pkg/sl"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

type DialogResolver interface {
	Resolve(event *api.Event) (*api.Envelope, error)
}

type Request struct {
	api.Event
}

func New(log *slog.Logger, resolver DialogResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dialog.resolve.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("Failed to decode request body", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "failed to decode request"))
			return
		}

		log.Info("Request body decoded", slog.String("intent", req.SessionState.Intent.Name))

		if req.SessionState.Intent.Name == "" {
			log.Error("intent name is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "intent name is required"))
			return
		}

		envelope, err := resolver.Resolve(&req.Event)

		if err != nil {
			log.Error("Failed to resolve dialog turn", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to resolve dialog turn"))
			return
		}

		log.Info("Dialog turn resolved",
			slog.String("action", envelope.SessionState.DialogAction.Type),
			slog.String("slot_to_elicit", envelope.SessionState.DialogAction.SlotToElicit),
		)

		render.JSON(w, r, envelope)
	}
}
