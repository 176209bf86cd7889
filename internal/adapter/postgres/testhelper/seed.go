package testhelper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sustainage/materiality-survey/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SurveyOption customises a seeded survey.
type SurveyOption func(*domain.Survey)

// WithStatus sets the seeded survey's status.
func WithStatus(s domain.SurveyStatus) SurveyOption {
	return func(sv *domain.Survey) { sv.Status = s }
}

// WithDeadline sets the seeded survey's deadline.
func WithDeadline(d time.Time) SurveyOption {
	return func(sv *domain.Survey) { sv.Deadline = d }
}

// SeedSurvey inserts an active survey due in 30 days and returns it with its id.
func SeedSurvey(t *testing.T, pool *pgxpool.Pool, opts ...SurveyOption) domain.Survey {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.Survey{
		Token:       strings.ReplaceAll(uuid.New().String(), "-", ""),
		Name:        "Survey " + suffix,
		CompanyName: "Company " + suffix,
		SurveyType:  domain.DefaultSurveyType,
		Status:      domain.SurveyStatusActive,
		Deadline:    now.Add(30 * 24 * time.Hour),
		CreatedAt:   now,
	}
	for _, opt := range opts {
		opt(&s)
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO surveys (token, name, company_name, survey_type, status, deadline_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		 RETURNING id`,
		s.Token, s.Name, s.CompanyName, s.SurveyType, string(s.Status), s.Deadline, s.CreatedAt,
	).Scan(&s.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedSurvey: %v", err)
	}

	return s
}

// SeedTopics inserts topics with the given codes in order (display_order 1..n).
func SeedTopics(t *testing.T, pool *pgxpool.Pool, surveyID int64, codes ...string) []domain.Topic {
	t.Helper()

	topics := make([]domain.Topic, 0, len(codes))
	for i, code := range codes {
		tp := domain.Topic{
			SurveyID:     surveyID,
			Code:         domain.TopicCode(code),
			Name:         "Topic " + code,
			Category:     "Environment",
			DisplayOrder: i + 1,
		}
		_, err := pool.Exec(context.Background(),
			`INSERT INTO survey_topics (survey_id, code, name, category, display_order)
			 VALUES ($1, $2, $3, $4, $5)`,
			tp.SurveyID, string(tp.Code), tp.Name, tp.Category, tp.DisplayOrder,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedTopics %s: %v", code, err)
		}
		topics = append(topics, tp)
	}
	return topics
}

// SeedResponse inserts one response row directly, bypassing the recorder.
func SeedResponse(t *testing.T, pool *pgxpool.Pool, r domain.Response) {
	t.Helper()

	if r.SubmissionID == uuid.Nil {
		r.SubmissionID = uuid.New()
	}
	if r.SubmittedAt.IsZero() {
		r.SubmittedAt = time.Now().UTC()
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO survey_responses
		 (survey_id, submission_id, stakeholder_name, stakeholder_email, topic_code, topic_name,
		  importance, impact, comment, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		r.SurveyID, r.SubmissionID, r.Stakeholder.Name, r.Stakeholder.Email, string(r.TopicCode),
		r.TopicName, r.Importance, r.Impact, r.Comment, r.SubmittedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedResponse: %v", err)
	}
}
