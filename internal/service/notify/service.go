package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/sustainage/materiality-survey/internal/config"
	"github.com/sustainage/materiality-survey/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type surveyRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Survey, error)
}

type linker interface {
	DistributionURL(token string) string
}

type mailer interface {
	Send(ctx context.Context, msg domain.MailMessage) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service renders and sends stakeholder messages for a survey.
type Service struct {
	log     *slog.Logger
	surveys surveyRepo
	links   linker
	mail    mailer
	clock   clockwork.Clock
	cfg     config.SMTPConfig
}

// NewService creates a new Notify service.
func NewService(
	logger *slog.Logger,
	surveys surveyRepo,
	links linker,
	mail mailer,
	clock clockwork.Clock,
	cfg config.SMTPConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "notify"),
		surveys: surveys,
		links:   links,
		mail:    mail,
		clock:   clock,
		cfg:     cfg,
	}
}

func (s *Service) now() time.Time {
	return s.clock.Now().UTC()
}
