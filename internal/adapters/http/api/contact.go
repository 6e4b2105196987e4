package api

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"showcase/internal/domain/model"
)

// ContactHandler handles contact-form submissions.
type ContactHandler struct {
	notifier Notifier
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(notifier Notifier) *ContactHandler {
	return &ContactHandler{notifier: notifier}
}

// HandleSubmit handles POST /api/contact requests. The body may be JSON or
// URL-encoded form data. The message is validated for presence only and is
// never stored; delivery is simulated downstream.
func (h *ContactHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var msg model.ContactMessage
	if err := decodeContact(r, &msg); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := msg.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrMissingFields.Error())
		return
	}

	h.notifier.Dispatch(r.Context(), msg)
	writeJSON(w, http.StatusOK, messageResponse{
		Success: true,
		Message: "message received, we will get back to you soon",
	})
}

func decodeContact(r *http.Request, msg *model.ContactMessage) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return err
		}
		msg.Name = r.PostFormValue("name")
		msg.Email = r.PostFormValue("email")
		msg.Subject = r.PostFormValue("subject")
		msg.Message = r.PostFormValue("message")
		return nil
	}
	return json.NewDecoder(r.Body).Decode(msg)
}
