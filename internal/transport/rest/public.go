package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/sustainage/materiality-survey/internal/domain"
	"github.com/sustainage/materiality-survey/internal/service/response"
	"github.com/sustainage/materiality-survey/internal/service/survey"
)

type publicSurveyService interface {
	FetchByToken(ctx context.Context, token string) (*survey.PublicSurvey, error)
}

type submitService interface {
	Submit(ctx context.Context, input response.SubmitInput) (*response.SubmitResult, error)
}

// PublicHandler serves the stakeholder endpoints. Possession of the survey
// token is the only credential.
type PublicHandler struct {
	surveys   publicSurveyService
	responses submitService
	log       *slog.Logger
	maxBody   int64
}

// NewPublicHandler creates a PublicHandler.
func NewPublicHandler(surveys publicSurveyService, responses submitService, logger *slog.Logger, maxBody int64) *PublicHandler {
	return &PublicHandler{
		surveys:   surveys,
		responses: responses,
		log:       logger.With("handler", "public"),
		maxBody:   maxBody,
	}
}

// Fetch handles GET /api/v1/public/surveys/{token}.
func (h *PublicHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	ps, err := h.surveys.FetchByToken(r.Context(), r.PathValue("token"))
	if err != nil {
		handleFetchError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, publicSurveyResponse{
		okBody: okResp,
		Survey: publicSurveyDTO{
			ID:          ps.Survey.ID,
			Name:        ps.Survey.Name,
			CompanyName: ps.Survey.CompanyName,
			Description: ps.Survey.Description,
			Deadline:    ps.Survey.Deadline,
		},
		Topics: toTopicDTOs(ps.Topics),
	})
}

// Submit handles POST /api/v1/public/surveys/{token}/responses. The body is
// JSON or an HTML form using the field names of the survey page.
func (h *PublicHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var (
		input response.SubmitInput
		err   error
	)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		input, err = h.parseForm(w, r, mediaType)
	default:
		input, err = h.parseJSON(w, r)
	}
	if err != nil {
		writeDecodeError(w, err)
		return
	}
	input.Token = r.PathValue("token")

	result, err := h.responses.Submit(r.Context(), input)
	if err != nil {
		handleSubmitError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{
		okBody:        okResp,
		Message:       "thank you for your response",
		SubmissionID:  result.SubmissionID,
		Accepted:      result.Accepted,
		Rejected:      toRejections(result.Rejected),
		ResponseCount: result.ResponseCount,
	})
}

func (h *PublicHandler) parseJSON(w http.ResponseWriter, r *http.Request) (response.SubmitInput, error) {
	var req submitRequest
	if err := decodeJSON(w, r, h.maxBody, &req); err != nil {
		return response.SubmitInput{}, err
	}

	ratings := make(map[domain.TopicCode]response.RatingInput, len(req.Ratings))
	for code, rt := range req.Ratings {
		ratings[domain.TopicCode(code)] = response.RatingInput{
			Importance: rt.Importance,
			Impact:     rt.Impact,
			Comment:    rt.Comment,
		}
	}

	return response.SubmitInput{
		SurveyID: req.SurveyID,
		Stakeholder: response.StakeholderInput{
			Name:         req.Stakeholder.Name,
			Email:        req.Stakeholder.Email,
			Organization: req.Stakeholder.Organization,
			Role:         req.Stakeholder.Role,
		},
		Ratings: ratings,
	}, nil
}

// Form field prefixes for per-topic values, e.g. importance_E1.
const (
	importancePrefix = "importance_"
	impactPrefix     = "impact_"
	commentPrefix    = "comment_"
)

func (h *PublicHandler) parseForm(w http.ResponseWriter, r *http.Request, mediaType string) (response.SubmitInput, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)

	var err error
	if mediaType == "multipart/form-data" {
		err = r.ParseMultipartForm(h.maxBody)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || errors.Is(err, multipart.ErrMessageTooLarge) {
			return response.SubmitInput{}, errBodyTooLarge
		}
		return response.SubmitInput{}, fmt.Errorf("parse form: %w", err)
	}
	form := r.PostForm

	surveyID, _ := strconv.ParseInt(strings.TrimSpace(form.Get("survey_id")), 10, 64)

	ratings := make(map[domain.TopicCode]response.RatingInput)
	for key, values := range form {
		if len(values) == 0 {
			continue
		}
		v := values[0]
		switch {
		case strings.HasPrefix(key, importancePrefix):
			code := domain.TopicCode(strings.TrimPrefix(key, importancePrefix))
			rt := ratings[code]
			rt.Importance = formScore(v)
			ratings[code] = rt
		case strings.HasPrefix(key, impactPrefix):
			code := domain.TopicCode(strings.TrimPrefix(key, impactPrefix))
			rt := ratings[code]
			rt.Impact = formScore(v)
			ratings[code] = rt
		case strings.HasPrefix(key, commentPrefix):
			code := domain.TopicCode(strings.TrimPrefix(key, commentPrefix))
			rt := ratings[code]
			rt.Comment = v
			ratings[code] = rt
		}
	}

	return response.SubmitInput{
		SurveyID: surveyID,
		Stakeholder: response.StakeholderInput{
			Name:         form.Get("stakeholder_name"),
			Email:        form.Get("stakeholder_email"),
			Organization: form.Get("stakeholder_organization"),
			Role:         form.Get("stakeholder_role"),
		},
		Ratings: ratings,
	}, nil
}

// formScore treats an empty field as missing and any non-integer as out of
// range, so the topic is rejected with a reason instead of failing the form.
func formScore(v string) *int {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		n = 0
	}
	return &n
}
