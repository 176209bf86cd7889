// Package topic implements the Topic repository using PostgreSQL.
// Topics belong to one survey and are identified by (survey_id, code).
package topic

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sustainage/materiality-survey/internal/adapter/postgres"
	"github.com/sustainage/materiality-survey/internal/domain"
)

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new topic repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const insertSQL = `
INSERT INTO survey_topics (survey_id, code, name, category, description, display_order)
VALUES ($1, $2, $3, $4, $5, $6)`

const listBySurveySQL = `
SELECT survey_id, code, name, category, description, display_order
FROM survey_topics
WHERE survey_id = $1
ORDER BY display_order`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateAll inserts every topic with one batch round trip and stops at the
// first failure. Run it inside a transaction to get all-or-nothing semantics.
func (r *Repo) CreateAll(ctx context.Context, surveyID int64, topics []domain.Topic) error {
	if len(topics) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, t := range topics {
		batch.Queue(insertSQL, surveyID, string(t.Code), t.Name, t.Category, t.Description, t.DisplayOrder)
	}

	br := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer br.Close()

	for _, t := range topics {
		if _, err := br.Exec(); err != nil {
			return postgres.MapError(err, "topic", t.Code)
		}
	}
	return br.Close()
}

// AddTopics inserts topics one by one; a failed insert does not undo earlier
// ones. It returns the number inserted and the topics that failed. The error
// is non-nil only when ctx is done, in which case the remaining topics are
// not attempted.
func (r *Repo) AddTopics(ctx context.Context, surveyID int64, topics []domain.Topic) (int, []domain.TopicRejection, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	inserted := 0
	var failed []domain.TopicRejection
	for _, t := range topics {
		if err := ctx.Err(); err != nil {
			return inserted, failed, err
		}

		_, err := q.Exec(ctx, insertSQL, surveyID, string(t.Code), t.Name, t.Category, t.Description, t.DisplayOrder)
		if err != nil {
			failed = append(failed, domain.TopicRejection{
				Code:   t.Code,
				Name:   t.Name,
				Reason: insertFailureReason(err),
			})
			continue
		}
		inserted++
	}

	return inserted, failed, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListBySurvey returns the survey's topics ordered by display_order.
// Returns an empty slice (not nil) when the survey has no topics.
func (r *Repo) ListBySurvey(ctx context.Context, surveyID int64) ([]domain.Topic, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listBySurveySQL, surveyID)
	if err != nil {
		return nil, fmt.Errorf("list topics for survey %d: %w", surveyID, err)
	}
	defer rows.Close()

	topics := make([]domain.Topic, 0)
	for rows.Next() {
		var (
			t    domain.Topic
			code string
		)
		if err := rows.Scan(&t.SurveyID, &code, &t.Name, &t.Category, &t.Description, &t.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		t.Code = domain.TopicCode(code)
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate topics: %w", err)
	}

	return topics, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// insertFailureReason turns a storage error into a short caller-safe reason.
func insertFailureReason(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return "duplicate topic code"
		case "23503":
			return "survey does not exist"
		case "23514":
			return "invalid topic"
		}
	}
	return "storage error"
}
