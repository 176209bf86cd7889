package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sustainage/materiality-survey/internal/service/notify"
)

type notifyService interface {
	SendInvitations(ctx context.Context, surveyID int64, recipients []notify.Recipient) ([]notify.DeliveryResult, error)
	SendReminders(ctx context.Context, surveyID int64, recipients []notify.Recipient) ([]notify.DeliveryResult, error)
}

// NotifyHandler serves the invitation and reminder endpoints.
type NotifyHandler struct {
	svc     notifyService
	log     *slog.Logger
	maxBody int64
}

// NewNotifyHandler creates a NotifyHandler.
func NewNotifyHandler(svc notifyService, logger *slog.Logger, maxBody int64) *NotifyHandler {
	return &NotifyHandler{svc: svc, log: logger.With("handler", "notify"), maxBody: maxBody}
}

// Invitations handles POST /api/v1/surveys/{id}/invitations.
func (h *NotifyHandler) Invitations(w http.ResponseWriter, r *http.Request) {
	h.send(w, r, h.svc.SendInvitations)
}

// Reminders handles POST /api/v1/surveys/{id}/reminders.
func (h *NotifyHandler) Reminders(w http.ResponseWriter, r *http.Request) {
	h.send(w, r, h.svc.SendReminders)
}

type sendFunc func(ctx context.Context, surveyID int64, recipients []notify.Recipient) ([]notify.DeliveryResult, error)

func (h *NotifyHandler) send(w http.ResponseWriter, r *http.Request, fn sendFunc) {
	id, err := pathID(r)
	if err != nil {
		handleOperatorError(w, r, h.log, err)
		return
	}

	var req sendRequest
	if err := decodeJSON(w, r, h.maxBody, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	results, err := fn(r.Context(), id, req.toRecipients())
	if err != nil {
		handleOperatorError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSendResponse(results))
}
