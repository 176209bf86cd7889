package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/sustainage/materiality-survey/internal/domain"
	"github.com/sustainage/materiality-survey/internal/service/notify"
	"github.com/sustainage/materiality-survey/internal/service/report"
	"github.com/sustainage/materiality-survey/internal/service/survey"
)

// ---------------------------------------------------------------------------
// Surveys
// ---------------------------------------------------------------------------

type topicRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type createSurveyRequest struct {
	Name        string         `json:"name"`
	CompanyName string         `json:"company_name"`
	SurveyType  string         `json:"survey_type"`
	Description string         `json:"description"`
	Deadline    string         `json:"deadline"`
	Status      string         `json:"status"`
	Token       string         `json:"token"`
	Topics      []topicRequest `json:"topics"`
}

func (req createSurveyRequest) toInput() survey.CreateSurveyInput {
	topics := make([]survey.TopicInput, len(req.Topics))
	for i, t := range req.Topics {
		topics[i] = survey.TopicInput{Code: t.Code, Name: t.Name, Category: t.Category, Description: t.Description}
	}
	return survey.CreateSurveyInput{
		Name:        req.Name,
		CompanyName: req.CompanyName,
		SurveyType:  req.SurveyType,
		Description: req.Description,
		Deadline:    req.Deadline,
		Status:      req.Status,
		Token:       req.Token,
		Topics:      topics,
	}
}

type topicRejectionDTO struct {
	Code   string `json:"code"`
	Name   string `json:"name,omitempty"`
	Reason string `json:"reason"`
}

func toRejections(in []domain.TopicRejection) []topicRejectionDTO {
	out := make([]topicRejectionDTO, len(in))
	for i, r := range in {
		out[i] = topicRejectionDTO{Code: r.Code.String(), Name: r.Name, Reason: r.Reason}
	}
	return out
}

type createSurveyResponse struct {
	okBody
	SurveyID        int64               `json:"survey_id"`
	SurveyToken     string              `json:"survey_token"`
	SurveyURL       string              `json:"survey_url"`
	Status          string              `json:"status"`
	Deadline        time.Time           `json:"deadline"`
	TopicsSubmitted int                 `json:"topics_submitted"`
	TopicsAdded     int                 `json:"topics_added"`
	TopicFailures   []topicRejectionDTO `json:"topic_failures"`
}

type surveyDTO struct {
	ID            int64     `json:"id"`
	Token         string    `json:"token"`
	Name          string    `json:"name"`
	CompanyName   string    `json:"company_name"`
	SurveyType    string    `json:"survey_type"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	Deadline      time.Time `json:"deadline"`
	ResponseCount int       `json:"response_count"`
	TopicCount    *int      `json:"topic_count,omitempty"`
	SurveyURL     string    `json:"survey_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toSurveyDTO(s domain.Survey, url string) surveyDTO {
	return surveyDTO{
		ID:            s.ID,
		Token:         s.Token,
		Name:          s.Name,
		CompanyName:   s.CompanyName,
		SurveyType:    s.SurveyType,
		Description:   s.Description,
		Status:        s.Status.String(),
		Deadline:      s.Deadline,
		ResponseCount: s.ResponseCount,
		SurveyURL:     url,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

type topicDTO struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

func toTopicDTOs(in []domain.Topic) []topicDTO {
	out := make([]topicDTO, len(in))
	for i, t := range in {
		out[i] = topicDTO{
			Code:         t.Code.String(),
			Name:         t.Name,
			Category:     t.Category,
			Description:  t.Description,
			DisplayOrder: t.DisplayOrder,
		}
	}
	return out
}

type listSurveysResponse struct {
	okBody
	Surveys []surveyDTO `json:"surveys"`
	Total   int         `json:"total"`
}

func toListResponse(entries []survey.ListEntry) listSurveysResponse {
	out := make([]surveyDTO, len(entries))
	for i, e := range entries {
		dto := toSurveyDTO(e.Survey, e.DistributionURL)
		count := e.TopicCount
		dto.TopicCount = &count
		out[i] = dto
	}
	return listSurveysResponse{okBody: okResp, Surveys: out, Total: len(out)}
}

type surveyDetailResponse struct {
	okBody
	Survey surveyDTO  `json:"survey"`
	Topics []topicDTO `json:"topics"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type surveyResponse struct {
	okBody
	Survey surveyDTO `json:"survey"`
}

// ---------------------------------------------------------------------------
// Reports
// ---------------------------------------------------------------------------

type topicStatsDTO struct {
	TopicCode        string  `json:"topic_code"`
	TopicName        *string `json:"topic_name"`
	Category         *string `json:"category"`
	AvgImportance    float64 `json:"avg_importance"`
	AvgImpact        float64 `json:"avg_impact"`
	MaterialityScore float64 `json:"materiality_score"`
	ResponseCount    int64   `json:"response_count"`
	MinImportance    int     `json:"min_importance"`
	MaxImportance    int     `json:"max_importance"`
	MinImpact        int     `json:"min_impact"`
	MaxImpact        int     `json:"max_impact"`
}

type summaryResponse struct {
	okBody
	SurveyID          int64           `json:"survey_id"`
	TotalStakeholders int64           `json:"total_stakeholders"`
	TotalTopics       int             `json:"total_topics"`
	Topics            []topicStatsDTO `json:"topics"`
}

func toSummaryResponse(s *domain.Summary) summaryResponse {
	topics := make([]topicStatsDTO, len(s.Topics))
	for i, t := range s.Topics {
		topics[i] = topicStatsDTO{
			TopicCode:        t.TopicCode.String(),
			TopicName:        t.TopicName,
			Category:         t.TopicCategory,
			AvgImportance:    t.AvgImportance,
			AvgImpact:        t.AvgImpact,
			MaterialityScore: t.MaterialityScore,
			ResponseCount:    t.ResponseCount,
			MinImportance:    t.MinImportance,
			MaxImportance:    t.MaxImportance,
			MinImpact:        t.MinImpact,
			MaxImpact:        t.MaxImpact,
		}
	}
	return summaryResponse{
		okBody:            okResp,
		SurveyID:          s.SurveyID,
		TotalStakeholders: s.TotalStakeholders,
		TotalTopics:       len(topics),
		Topics:            topics,
	}
}

type evaluationDTO struct {
	TopicCode  string `json:"topic_code"`
	TopicName  string `json:"topic_name"`
	Importance int    `json:"importance"`
	Impact     int    `json:"impact"`
	Comment    string `json:"comment"`
}

type stakeholderDTO struct {
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Organization string          `json:"organization"`
	Role         string          `json:"role"`
	SubmissionID uuid.UUID       `json:"submission_id"`
	ResponseDate time.Time       `json:"response_date"`
	IPAddress    string          `json:"ip_address"`
	Evaluations  []evaluationDTO `json:"evaluations"`
}

type groupedResponse struct {
	okBody
	Survey       surveyDTO        `json:"survey"`
	Stakeholders []stakeholderDTO `json:"stakeholders"`
	Total        int              `json:"total_stakeholders"`
}

func toGroupedResponse(g *report.GroupedResult) groupedResponse {
	out := make([]stakeholderDTO, len(g.Stakeholders))
	for i, s := range g.Stakeholders {
		evals := make([]evaluationDTO, len(s.Evaluations))
		for j, e := range s.Evaluations {
			evals[j] = evaluationDTO{
				TopicCode:  e.TopicCode.String(),
				TopicName:  e.TopicName,
				Importance: e.Importance,
				Impact:     e.Impact,
				Comment:    e.Comment,
			}
		}
		out[i] = stakeholderDTO{
			Name:         s.Name,
			Email:        s.Email,
			Organization: s.Organization,
			Role:         s.Role,
			SubmissionID: s.SubmissionID,
			ResponseDate: s.ResponseDate,
			IPAddress:    s.IPAddress,
			Evaluations:  evals,
		}
	}
	return groupedResponse{
		okBody:       okResp,
		Survey:       toSurveyDTO(g.Survey, ""),
		Stakeholders: out,
		Total:        len(out),
	}
}

type commentDTO struct {
	TopicCode        string    `json:"topic_code"`
	TopicName        string    `json:"topic_name"`
	StakeholderName  string    `json:"stakeholder_name"`
	StakeholderEmail string    `json:"stakeholder_email"`
	Comment          string    `json:"comment"`
	SubmittedAt      time.Time `json:"submitted_at"`
}

type commentsResponse struct {
	okBody
	Comments []commentDTO `json:"comments"`
	Total    int          `json:"total"`
}

func toCommentsResponse(in []domain.Comment) commentsResponse {
	out := make([]commentDTO, len(in))
	for i, c := range in {
		var name string
		if c.TopicName != nil {
			name = *c.TopicName
		}
		out[i] = commentDTO{
			TopicCode:        c.TopicCode.String(),
			TopicName:        name,
			StakeholderName:  c.StakeholderName,
			StakeholderEmail: c.StakeholderEmail,
			Comment:          c.Comment,
			SubmittedAt:      c.SubmittedAt,
		}
	}
	return commentsResponse{okBody: okResp, Comments: out, Total: len(out)}
}

type auditRecordDTO struct {
	ID        uuid.UUID      `json:"id"`
	Action    string         `json:"action"`
	Actor     string         `json:"actor"`
	Changes   map[string]any `json:"changes"`
	CreatedAt time.Time      `json:"created_at"`
}

type auditResponse struct {
	okBody
	Records []auditRecordDTO `json:"records"`
}

func toAuditResponse(in []domain.AuditRecord) auditResponse {
	out := make([]auditRecordDTO, len(in))
	for i, a := range in {
		out[i] = auditRecordDTO{
			ID:        a.ID,
			Action:    a.Action.String(),
			Actor:     a.Actor,
			Changes:   a.Changes,
			CreatedAt: a.CreatedAt,
		}
	}
	return auditResponse{okBody: okResp, Records: out}
}

// ---------------------------------------------------------------------------
// Notifications
// ---------------------------------------------------------------------------

type recipientRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type sendRequest struct {
	Recipients []recipientRequest `json:"recipients"`
}

func (req sendRequest) toRecipients() []notify.Recipient {
	out := make([]notify.Recipient, len(req.Recipients))
	for i, r := range req.Recipients {
		out[i] = notify.Recipient{Email: r.Email, Name: r.Name}
	}
	return out
}

type deliveryDTO struct {
	Email  string `json:"email"`
	Sent   bool   `json:"sent"`
	Reason string `json:"reason,omitempty"`
}

type sendResponse struct {
	okBody
	Sent    int           `json:"sent"`
	Failed  int           `json:"failed"`
	Results []deliveryDTO `json:"results"`
}

func toSendResponse(in []notify.DeliveryResult) sendResponse {
	resp := sendResponse{okBody: okResp, Results: make([]deliveryDTO, len(in))}
	for i, d := range in {
		resp.Results[i] = deliveryDTO{Email: d.Email, Sent: d.Sent, Reason: d.Reason}
		if d.Sent {
			resp.Sent++
		} else {
			resp.Failed++
		}
	}
	return resp
}

// ---------------------------------------------------------------------------
// Stakeholder API
// ---------------------------------------------------------------------------

type publicSurveyDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	CompanyName string    `json:"company_name"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
}

type publicSurveyResponse struct {
	okBody
	Survey publicSurveyDTO `json:"survey"`
	Topics []topicDTO      `json:"topics"`
}

type stakeholderRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	Role         string `json:"role"`
}

type ratingRequest struct {
	Importance *int   `json:"importance"`
	Impact     *int   `json:"impact"`
	Comment    string `json:"comment"`
}

type submitRequest struct {
	SurveyID    int64                    `json:"survey_id"`
	Stakeholder stakeholderRequest       `json:"stakeholder"`
	Ratings     map[string]ratingRequest `json:"ratings"`
}

type submitResponse struct {
	okBody
	Message       string              `json:"message"`
	SubmissionID  uuid.UUID           `json:"submission_id"`
	Accepted      int                 `json:"accepted"`
	Rejected      []topicRejectionDTO `json:"rejected"`
	ResponseCount int                 `json:"response_count"`
}

// ---------------------------------------------------------------------------
// Sessions
// ---------------------------------------------------------------------------

type sessionResponse struct {
	okBody
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}
