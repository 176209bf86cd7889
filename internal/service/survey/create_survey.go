package survey

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sustainage/materiality-survey/internal/auth"
	"github.com/sustainage/materiality-survey/internal/domain"
)

// CreateSurvey stores a survey with its topics. actor is the reference of
// the operator credential and is kept as the survey's creator.
func (s *Service) CreateSurvey(ctx context.Context, actor string, input CreateSurveyInput) (*CreateSurveyResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if len(input.Topics) > s.cfg.MaxTopics {
		return nil, domain.NewValidationError("topics", fmt.Sprintf("max %d topics", s.cfg.MaxTopics))
	}

	now := s.now()

	token := input.Token
	if token == "" {
		var err error
		if token, err = auth.NewToken(); err != nil {
			return nil, fmt.Errorf("generate token: %w", err)
		}
	}

	deadline := now.AddDate(0, 0, s.cfg.DefaultDeadlineDays)
	if input.Deadline != "" {
		// Already validated.
		deadline, _ = parseDeadline(input.Deadline)
	}

	status := domain.SurveyStatusActive
	if input.Status != "" {
		status = domain.SurveyStatus(input.Status)
	}

	surveyType := strings.TrimSpace(input.SurveyType)
	if surveyType == "" {
		surveyType = domain.DefaultSurveyType
	}

	draft := domain.Survey{
		Token:       token,
		Name:        strings.TrimSpace(input.Name),
		CompanyName: strings.TrimSpace(input.CompanyName),
		SurveyType:  surveyType,
		Description: strings.TrimSpace(input.Description),
		Status:      status,
		Deadline:    deadline,
		CreatorRef:  actor,
		CreatedAt:   now.Truncate(time.Microsecond),
	}
	topics := buildTopics(input.Topics)

	result := &CreateSurveyResult{TopicsSubmitted: len(topics)}
	mode := domain.TopicInsertMode(s.cfg.TopicInsertMode)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, createErr := s.surveys.Create(txCtx, draft)
		if createErr != nil {
			return fmt.Errorf("create survey: %w", createErr)
		}
		result.Survey = created

		if mode == domain.TopicInsertAtomic {
			if topicErr := s.topics.CreateAll(txCtx, created.ID, topics); topicErr != nil {
				return fmt.Errorf("create topics: %w", topicErr)
			}
			result.TopicsAdded = len(topics)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			Action:     domain.AuditActionCreate,
			EntityType: domain.EntityTypeSurvey,
			EntityID:   created.ID,
			Actor:      actor,
			Changes: map[string]any{
				"name":         created.Name,
				"company_name": created.CompanyName,
				"status":       string(created.Status),
				"topics":       len(topics),
				"token_given":  input.Token != "",
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if mode == domain.TopicInsertBestEffort {
		added, failures, addErr := s.topics.AddTopics(ctx, result.Survey.ID, topics)
		result.TopicsAdded = added
		result.TopicFailures = failures
		if addErr != nil {
			return nil, fmt.Errorf("add topics: %w", addErr)
		}
		for _, f := range failures {
			s.log.WarnContext(ctx, "topic not stored",
				slog.Int64("survey_id", result.Survey.ID),
				slog.String("topic_code", f.Code.String()),
				slog.String("reason", f.Reason),
			)
		}
	}

	result.DistributionURL = s.DistributionURL(result.Survey.Token)

	s.log.InfoContext(ctx, "survey created",
		slog.Int64("survey_id", result.Survey.ID),
		slog.String("status", string(result.Survey.Status)),
		slog.Int("topics_submitted", result.TopicsSubmitted),
		slog.Int("topics_added", result.TopicsAdded),
		slog.String("actor", actor),
	)

	return result, nil
}

// buildTopics assigns display_order by payload position, starting at 1.
func buildTopics(in []TopicInput) []domain.Topic {
	out := make([]domain.Topic, len(in))
	for i, t := range in {
		out[i] = domain.Topic{
			Code:         domain.TopicCode(strings.TrimSpace(t.Code)),
			Name:         strings.TrimSpace(t.Name),
			Category:     strings.TrimSpace(t.Category),
			Description:  strings.TrimSpace(t.Description),
			DisplayOrder: i + 1,
		}
	}
	return out
}
