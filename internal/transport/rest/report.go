package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sustainage/materiality-survey/internal/domain"
	"github.com/sustainage/materiality-survey/internal/service/report"
)

type reportService interface {
	Summary(ctx context.Context, surveyID int64) (*domain.Summary, error)
	GroupedResponses(ctx context.Context, ref report.SurveyRef) (*report.GroupedResult, error)
	Comments(ctx context.Context, surveyID int64) ([]domain.Comment, error)
	AuditTrail(ctx context.Context, surveyID int64, limit int) ([]domain.AuditRecord, error)
}

// ReportHandler serves the aggregated views of a survey.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

// Summary handles GET /api/v1/surveys/{id}/summary.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleOperatorError(w, r, h.log, err)
		return
	}

	sum, err := h.svc.Summary(r.Context(), id)
	if err != nil {
		handleOperatorError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryResponse(sum))
}

// Responses handles GET /api/v1/surveys/{id}/responses.
func (h *ReportHandler) Responses(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleOperatorError(w, r, h.log, err)
		return
	}
	h.grouped(w, r, report.SurveyRef{ID: id})
}

// ResponsesByToken handles GET /api/v1/responses?token=.
func (h *ReportHandler) ResponsesByToken(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeValidation(w, domain.NewValidationError("token", "required"))
		return
	}
	h.grouped(w, r, report.SurveyRef{Token: token})
}

func (h *ReportHandler) grouped(w http.ResponseWriter, r *http.Request, ref report.SurveyRef) {
	res, err := h.svc.GroupedResponses(r.Context(), ref)
	if err != nil {
		handleOperatorError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toGroupedResponse(res))
}

// Comments handles GET /api/v1/surveys/{id}/comments.
func (h *ReportHandler) Comments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleOperatorError(w, r, h.log, err)
		return
	}

	comments, err := h.svc.Comments(r.Context(), id)
	if err != nil {
		handleOperatorError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCommentsResponse(comments))
}

// Audit handles GET /api/v1/surveys/{id}/audit?limit=.
func (h *ReportHandler) Audit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleOperatorError(w, r, h.log, err)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil {
			writeValidation(w, domain.NewValidationError("limit", "must be an integer"))
			return
		}
	}

	records, err := h.svc.AuditTrail(r.Context(), id, limit)
	if err != nil {
		handleOperatorError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuditResponse(records))
}
