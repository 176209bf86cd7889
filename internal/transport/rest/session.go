package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sustainage/materiality-survey/pkg/ctxutil"
)

type sessionIssuer interface {
	Issue(subject string) (string, time.Time, error)
}

// SessionHandler exchanges the shared secret for a short-lived token.
type SessionHandler struct {
	sessions sessionIssuer
	log      *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(sessions sessionIssuer, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, log: logger.With("handler", "session")}
}

// Create handles POST /api/v1/sessions. Only the shared secret may open a
// session; a session token cannot renew itself.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("X-API-Key") == "" {
		writeError(w, http.StatusUnauthorized, "api key required")
		return
	}

	subject, _ := ctxutil.OperatorFromCtx(r.Context())
	token, expiresAt, err := h.sessions.Issue(subject)
	if err != nil {
		h.log.ErrorContext(r.Context(), "issue session", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{
		okBody:    okResp,
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
	})
}
