package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sustainage/materiality-survey/internal/domain"
	"github.com/sustainage/materiality-survey/internal/service/survey"
	"github.com/sustainage/materiality-survey/pkg/ctxutil"
)

type surveyService interface {
	CreateSurvey(ctx context.Context, actor string, input survey.CreateSurveyInput) (*survey.CreateSurveyResult, error)
	ListSurveys(ctx context.Context, status string) ([]survey.ListEntry, error)
	GetSurvey(ctx context.Context, id int64) (*survey.Detail, error)
	UpdateStatus(ctx context.Context, actor string, input survey.UpdateStatusInput) (*domain.Survey, error)
	DeleteSurvey(ctx context.Context, actor string, id int64) error
	DistributionURL(token string) string
}

// SurveyHandler serves the operator survey endpoints.
type SurveyHandler struct {
	svc     surveyService
	log     *slog.Logger
	maxBody int64
}

// NewSurveyHandler creates a SurveyHandler.
func NewSurveyHandler(svc surveyService, logger *slog.Logger, maxBody int64) *SurveyHandler {
	return &SurveyHandler{svc: svc, log: logger.With("handler", "survey"), maxBody: maxBody}
}

// Create handles POST /api/v1/surveys.
func (h *SurveyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSurveyRequest
	if err := decodeJSON(w, r, h.maxBody, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	actor, _ := ctxutil.OperatorFromCtx(r.Context())
	result, err := h.svc.CreateSurvey(r.Context(), actor, req.toInput())
	if err != nil {
		handleOperatorError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, createSurveyResponse{
		okBody:          okResp,
		SurveyID:        result.Survey.ID,
		SurveyToken:     result.Survey.Token,
		SurveyURL:       result.DistributionURL,
		Status:          result.Survey.Status.String(),
		Deadline:        result.Survey.Deadline,
		TopicsSubmitted: result.TopicsSubmitted,
		TopicsAdded:     result.TopicsAdded,
		TopicFailures:   toRejections(result.TopicFailures),
	})
}

// List handles GET /api/v1/surveys?status=.
func (h *SurveyHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListSurveys(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		handleOperatorError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toListResponse(entries))
}

// Get handles GET /api/v1/surveys/{id}.
func (h *SurveyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleOperatorError(w, r, h.log, err)
		return
	}

	detail, err := h.svc.GetSurvey(r.Context(), id)
	if err != nil {
		handleOperatorError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, surveyDetailResponse{
		okBody: okResp,
		Survey: toSurveyDTO(detail.Survey, detail.DistributionURL),
		Topics: toTopicDTOs(detail.Topics),
	})
}

// UpdateStatus handles PATCH /api/v1/surveys/{id}/status.
func (h *SurveyHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleOperatorError(w, r, h.log, err)
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(w, r, h.maxBody, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	actor, _ := ctxutil.OperatorFromCtx(r.Context())
	updated, err := h.svc.UpdateStatus(r.Context(), actor, survey.UpdateStatusInput{SurveyID: id, Status: req.Status})
	if err != nil {
		handleOperatorError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, surveyResponse{
		okBody: okResp,
		Survey: toSurveyDTO(*updated, h.svc.DistributionURL(updated.Token)),
	})
}

// Delete handles DELETE /api/v1/surveys/{id}. Topics and responses go with it.
func (h *SurveyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleOperatorError(w, r, h.log, err)
		return
	}

	actor, _ := ctxutil.OperatorFromCtx(r.Context())
	if err := h.svc.DeleteSurvey(r.Context(), actor, id); err != nil {
		handleOperatorError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, okResp)
}
