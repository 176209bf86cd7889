package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sustainage/materiality-survey/internal/domain"
)

// handleOperatorError maps service errors for the operator API. Operators see
// validation details and state reasons; storage details stay in the log.
func handleOperatorError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verr *domain.ValidationError
	var serr *domain.StateError

	switch {
	case errors.As(err, &verr):
		writeValidation(w, verr)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.As(err, &serr):
		writeStateError(w, http.StatusConflict, serr.Error(), serr.Reason)
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to send.
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// handleFetchError maps the outcomes of opening a distribution link.
func handleFetchError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var serr *domain.StateError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "survey not found")
	case errors.As(err, &serr):
		if serr.Is(domain.ErrSurveyNoTopics) {
			writeStateError(w, http.StatusUnprocessableEntity, "survey has no topics", serr.Reason)
			return
		}
		writeStateError(w, http.StatusGone, "survey is not accepting responses", serr.Reason)
	default:
		log.ErrorContext(r.Context(), "fetch survey", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// handleSubmitError maps submission failures. Only generic messages cross
// this boundary.
func handleSubmitError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verr *domain.ValidationError
	var serr *domain.StateError

	switch {
	case errors.As(err, &verr):
		writeValidation(w, verr)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "survey not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "a response from this email address already exists")
	case errors.As(err, &serr):
		writeStateError(w, http.StatusConflict, "survey is not accepting responses", serr.Reason)
	case errors.Is(err, domain.ErrPersistence):
		log.ErrorContext(r.Context(), "submission not recorded", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "response could not be recorded")
	default:
		log.ErrorContext(r.Context(), "submit", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
