package survey

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/sustainage/materiality-survey/internal/config"
	"github.com/sustainage/materiality-survey/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type surveyRepo interface {
	Create(ctx context.Context, s domain.Survey) (domain.Survey, error)
	GetByID(ctx context.Context, id int64) (*domain.Survey, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Survey, error)
	GetByToken(ctx context.Context, token string) (*domain.Survey, error)
	List(ctx context.Context, filter domain.StatusFilter) ([]domain.SurveyListItem, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SurveyStatus) error
	Delete(ctx context.Context, id int64) error
}

type topicRepo interface {
	CreateAll(ctx context.Context, surveyID int64, topics []domain.Topic) error
	AddTopics(ctx context.Context, surveyID int64, topics []domain.Topic) (int, []domain.TopicRejection, error)
	ListBySurvey(ctx context.Context, surveyID int64) ([]domain.Topic, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service manages survey creation, status transitions and stakeholder access.
type Service struct {
	log     *slog.Logger
	surveys surveyRepo
	topics  topicRepo
	audit   auditLogger
	tx      txManager
	clock   clockwork.Clock
	cfg     config.SurveyConfig
}

// NewService creates a new Survey service.
func NewService(
	logger *slog.Logger,
	surveys surveyRepo,
	topics topicRepo,
	audit auditLogger,
	tx txManager,
	clock clockwork.Clock,
	cfg config.SurveyConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "survey"),
		surveys: surveys,
		topics:  topics,
		audit:   audit,
		tx:      tx,
		clock:   clock,
		cfg:     cfg,
	}
}

// DistributionURL returns the stakeholder link for a survey token.
func (s *Service) DistributionURL(token string) string {
	return s.cfg.PublicBaseURL + "/survey?token=" + url.QueryEscape(token)
}

func (s *Service) now() time.Time {
	return s.clock.Now().UTC()
}
