package response

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/sustainage/materiality-survey/internal/config"
	"github.com/sustainage/materiality-survey/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type surveyRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Survey, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Survey, error)
}

type topicRepo interface {
	ListBySurvey(ctx context.Context, surveyID int64) ([]domain.Topic, error)
}

type responseRepo interface {
	InsertBatch(ctx context.Context, rows []domain.Response) (int, error)
	RecomputeResponseCount(ctx context.Context, surveyID int64) (int, error)
	DeleteByEmail(ctx context.Context, surveyID int64, email string) (int64, error)
	ExistsByEmail(ctx context.Context, surveyID int64, email string) (bool, error)
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

// Service validates and records stakeholder submissions.
type Service struct {
	log       *slog.Logger
	surveys   surveyRepo
	topics    topicRepo
	responses responseRepo
	audit     auditLogger
	tx        txManager
	clock     clockwork.Clock
	cfg       config.SurveyConfig
	newID     func() uuid.UUID
}

// NewService creates a new Response service.
func NewService(
	logger *slog.Logger,
	surveys surveyRepo,
	topics topicRepo,
	responses responseRepo,
	audit auditLogger,
	tx txManager,
	clock clockwork.Clock,
	cfg config.SurveyConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "response"),
		surveys:   surveys,
		topics:    topics,
		responses: responses,
		audit:     audit,
		tx:        tx,
		clock:     clock,
		cfg:       cfg,
		newID:     uuid.New,
	}
}

func (s *Service) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Microsecond)
}
