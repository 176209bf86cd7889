package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/sustainage/materiality-survey/internal/adapter/postgres"
	auditrepo "github.com/sustainage/materiality-survey/internal/adapter/postgres/audit"
	responserepo "github.com/sustainage/materiality-survey/internal/adapter/postgres/response"
	surveyrepo "github.com/sustainage/materiality-survey/internal/adapter/postgres/survey"
	topicrepo "github.com/sustainage/materiality-survey/internal/adapter/postgres/topic"
	"github.com/sustainage/materiality-survey/internal/adapter/smtp"
	"github.com/sustainage/materiality-survey/internal/auth"
	"github.com/sustainage/materiality-survey/internal/config"
	"github.com/sustainage/materiality-survey/internal/domain"
	"github.com/sustainage/materiality-survey/internal/service/notify"
	"github.com/sustainage/materiality-survey/internal/service/report"
	"github.com/sustainage/materiality-survey/internal/service/response"
	"github.com/sustainage/materiality-survey/internal/service/survey"
	"github.com/sustainage/materiality-survey/internal/transport/middleware"
	"github.com/sustainage/materiality-survey/internal/transport/rest"
)

// Deps are the long-lived resources the HTTP handler is built from.
// Mailer may be nil; it is then derived from cfg.SMTP.
type Deps struct {
	Logger  *slog.Logger
	Pool    *pgxpool.Pool
	Clock   clockwork.Clock
	Limiter *middleware.RateLimiter
	Mailer  Mailer
}

// Mailer delivers rendered notification messages.
type Mailer interface {
	Send(ctx context.Context, msg domain.MailMessage) error
}

// NewHandler assembles repositories, services, handlers and middleware into
// the root http.Handler.
func NewHandler(cfg *config.Config, d Deps) (http.Handler, error) {
	logger := d.Logger

	// Repositories
	surveys := surveyrepo.New(d.Pool)
	topics := topicrepo.New(d.Pool)
	responses := responserepo.New(d.Pool)
	audits := auditrepo.New(d.Pool)
	txm := postgres.NewTxManager(d.Pool)

	mailer := d.Mailer
	if mailer == nil {
		m, err := newMailer(cfg.SMTP, logger)
		if err != nil {
			return nil, err
		}
		mailer = m
	}

	// Services
	surveySvc := survey.NewService(logger, surveys, topics, audits, txm, d.Clock, cfg.Survey)
	responseSvc := response.NewService(logger, surveys, topics, responses, audits, txm, d.Clock, cfg.Survey)
	reportSvc := report.NewService(logger, surveys, topics, responses, audits)
	notifySvc := notify.NewService(logger, surveys, surveySvc, mailer, d.Clock, cfg.SMTP)

	// Auth
	gate := newGate(cfg.Auth)
	var (
		operator middleware.Middleware
		sessions *rest.SessionHandler
	)
	if cfg.Auth.SessionsEnabled() {
		sm := auth.NewSessionManager(cfg.Auth.SessionSecret, cfg.Auth.SessionIssuer, cfg.Auth.SessionTTL, d.Clock)
		operator = middleware.Operator(gate, sm)
		sessions = rest.NewSessionHandler(sm, logger)
	} else {
		operator = middleware.Operator(gate, nil)
	}

	maxBody := cfg.Server.MaxBodyBytes
	mux := rest.NewRouter(rest.Routes{
		Health:      rest.NewHealthHandler(d.Pool, BuildVersion()),
		Surveys:     rest.NewSurveyHandler(surveySvc, logger, maxBody),
		Reports:     rest.NewReportHandler(reportSvc, logger),
		Notify:      rest.NewNotifyHandler(notifySvc, logger, maxBody),
		Public:      rest.NewPublicHandler(surveySvc, responseSvc, logger, maxBody),
		Sessions:    sessions,
		Operator:    operator,
		FetchLimit:  d.Limiter.Limit("fetch", cfg.RateLimit.FetchesPerMinute),
		SubmitLimit: d.Limiter.Limit("submit", cfg.RateLimit.SubmissionsPerMinute),
	})

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.ClientInfo(cfg.Server.TrustProxyHeaders),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux), nil
}

func newGate(cfg config.AuthConfig) *auth.Gate {
	if cfg.APIKeyHash != "" {
		return auth.NewHashedGate(cfg.APIKeyHash)
	}
	return auth.NewGate(cfg.APIKey)
}

func newMailer(cfg config.SMTPConfig, logger *slog.Logger) (Mailer, error) {
	if !cfg.Enabled() {
		logger.Warn("smtp relay not configured, notifications are logged only")
		return smtp.NewLogMailer(logger), nil
	}
	m, err := smtp.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("smtp: %w", err)
	}
	return m, nil
}
