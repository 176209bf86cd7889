package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sustainage/materiality-survey/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type surveyRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Survey, error)
	GetByToken(ctx context.Context, token string) (*domain.Survey, error)
}

type topicRepo interface {
	ListBySurvey(ctx context.Context, surveyID int64) ([]domain.Topic, error)
}

type responseRepo interface {
	TopicAggregates(ctx context.Context, surveyID int64) ([]domain.TopicAggregate, error)
	CountStakeholders(ctx context.Context, surveyID int64) (int64, error)
	ListBySurvey(ctx context.Context, surveyID int64) ([]domain.Response, error)
	ListComments(ctx context.Context, surveyID int64) ([]domain.Comment, error)
}

type auditReader interface {
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID int64, limit int) ([]domain.AuditRecord, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service computes read-only reports over stored responses.
type Service struct {
	log       *slog.Logger
	surveys   surveyRepo
	topics    topicRepo
	responses responseRepo
	audit     auditReader
}

// NewService creates a new Report service.
func NewService(
	logger *slog.Logger,
	surveys surveyRepo,
	topics topicRepo,
	responses responseRepo,
	audit auditReader,
) *Service {
	return &Service{
		log:       logger.With("service", "report"),
		surveys:   surveys,
		topics:    topics,
		responses: responses,
		audit:     audit,
	}
}

// SurveyRef points at a survey either by id or by distribution token.
// Token wins when both are set.
type SurveyRef struct {
	ID    int64
	Token string
}

func (s *Service) resolve(ctx context.Context, ref SurveyRef) (*domain.Survey, error) {
	switch {
	case ref.Token != "":
		sv, err := s.surveys.GetByToken(ctx, ref.Token)
		if err != nil {
			return nil, fmt.Errorf("get survey by token: %w", err)
		}
		return sv, nil
	case ref.ID > 0:
		sv, err := s.surveys.GetByID(ctx, ref.ID)
		if err != nil {
			return nil, fmt.Errorf("get survey: %w", err)
		}
		return sv, nil
	}
	return nil, domain.NewValidationError("survey", "id or token required")
}
