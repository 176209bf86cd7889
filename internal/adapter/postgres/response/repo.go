// Package response implements the Response repository using PostgreSQL.
// Rows are one stakeholder rating of one topic; the set written by a single
// submit shares a submission_id.
package response

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sustainage/materiality-survey/internal/adapter/postgres"
	"github.com/sustainage/materiality-survey/internal/domain"
)

// Repo provides response persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new response repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const insertSQL = `
INSERT INTO survey_responses
    (survey_id, submission_id, stakeholder_name, stakeholder_email, stakeholder_organization,
     stakeholder_role, topic_code, topic_name, importance, impact, comment, submitted_at,
     ip_address, user_agent)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

const recomputeCountSQL = `
UPDATE surveys
SET response_count = (
    SELECT count(DISTINCT stakeholder_email)
    FROM survey_responses
    WHERE survey_id = $1
)
WHERE id = $1
RETURNING response_count`

const countStakeholdersSQL = `
SELECT count(DISTINCT stakeholder_email) FROM survey_responses WHERE survey_id = $1`

const existsByEmailSQL = `
SELECT EXISTS (SELECT 1 FROM survey_responses WHERE survey_id = $1 AND stakeholder_email = $2)`

const deleteByEmailSQL = `
DELETE FROM survey_responses WHERE survey_id = $1 AND stakeholder_email = $2`

const listBySurveySQL = `
SELECT id, survey_id, submission_id, stakeholder_name, stakeholder_email,
       stakeholder_organization, stakeholder_role, topic_code, topic_name,
       importance, impact, comment, submitted_at, ip_address, user_agent
FROM survey_responses
WHERE survey_id = $1
ORDER BY submitted_at DESC, id DESC`

const listCommentsSQL = `
SELECT r.topic_code, t.name AS topic_name, r.stakeholder_name, r.stakeholder_email,
       r.comment, r.submitted_at
FROM survey_responses r
LEFT JOIN survey_topics t ON t.survey_id = r.survey_id AND t.code = r.topic_code
WHERE r.survey_id = $1 AND r.comment <> ''
ORDER BY r.submitted_at DESC, r.id DESC`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// InsertBatch writes all rows with one batch round trip and returns the
// number written. Call it inside a transaction: a failing row leaves earlier
// rows of the batch in place otherwise.
func (r *Repo) InsertBatch(ctx context.Context, rows []domain.Response) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(insertSQL,
			row.SurveyID, row.SubmissionID, row.Stakeholder.Name, row.Stakeholder.Email,
			row.Stakeholder.Organization, row.Stakeholder.Role, string(row.TopicCode), row.TopicName,
			row.Importance, row.Impact, row.Comment, row.SubmittedAt, row.IPAddress, row.UserAgent,
		)
	}

	br := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer br.Close()

	written := 0
	for _, row := range rows {
		if _, err := br.Exec(); err != nil {
			return written, postgres.MapError(err, "response", row.TopicCode)
		}
		written++
	}
	if err := br.Close(); err != nil {
		return written, fmt.Errorf("close response batch: %w", err)
	}
	return written, nil
}

// RecomputeResponseCount sets surveys.response_count to the number of
// distinct stakeholder emails and returns it.
func (r *Repo) RecomputeResponseCount(ctx context.Context, surveyID int64) (int, error) {
	var count int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, recomputeCountSQL, surveyID).Scan(&count)
	if err != nil {
		return 0, postgres.MapError(err, "survey", surveyID)
	}
	return count, nil
}

// DeleteByEmail removes every row of one stakeholder and returns how many
// were removed.
func (r *Repo) DeleteByEmail(ctx context.Context, surveyID int64, email string) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteByEmailSQL, surveyID, email)
	if err != nil {
		return 0, postgres.MapError(err, "response", email)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ExistsByEmail reports whether the stakeholder has any row in the survey.
func (r *Repo) ExistsByEmail(ctx context.Context, surveyID int64, email string) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, existsByEmailSQL, surveyID, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check response exists: %w", err)
	}
	return exists, nil
}

// CountStakeholders returns the number of distinct emails with at least one row.
func (r *Repo) CountStakeholders(ctx context.Context, surveyID int64) (int64, error) {
	var count int64
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countStakeholdersSQL, surveyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count stakeholders: %w", err)
	}
	return count, nil
}

type responseRow struct {
	ID                      int64     `db:"id"`
	SurveyID                int64     `db:"survey_id"`
	SubmissionID            uuid.UUID `db:"submission_id"`
	StakeholderName         string    `db:"stakeholder_name"`
	StakeholderEmail        string    `db:"stakeholder_email"`
	StakeholderOrganization string    `db:"stakeholder_organization"`
	StakeholderRole         string    `db:"stakeholder_role"`
	TopicCode               string    `db:"topic_code"`
	TopicName               string    `db:"topic_name"`
	Importance              int       `db:"importance"`
	Impact                  int       `db:"impact"`
	Comment                 string    `db:"comment"`
	SubmittedAt             time.Time `db:"submitted_at"`
	IPAddress               string    `db:"ip_address"`
	UserAgent               string    `db:"user_agent"`
}

// ListBySurvey returns every row of the survey, newest first. Rows submitted
// at the same instant are ordered by descending id.
func (r *Repo) ListBySurvey(ctx context.Context, surveyID int64) ([]domain.Response, error) {
	var rows []responseRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listBySurveySQL, surveyID); err != nil {
		return nil, fmt.Errorf("list responses for survey %d: %w", surveyID, err)
	}

	out := make([]domain.Response, len(rows))
	for i, row := range rows {
		out[i] = domain.Response{
			ID:           row.ID,
			SurveyID:     row.SurveyID,
			SubmissionID: row.SubmissionID,
			Stakeholder: domain.Stakeholder{
				Name:         row.StakeholderName,
				Email:        row.StakeholderEmail,
				Organization: row.StakeholderOrganization,
				Role:         row.StakeholderRole,
			},
			TopicCode:   domain.TopicCode(row.TopicCode),
			TopicName:   row.TopicName,
			Importance:  row.Importance,
			Impact:      row.Impact,
			Comment:     row.Comment,
			SubmittedAt: row.SubmittedAt,
			IPAddress:   row.IPAddress,
			UserAgent:   row.UserAgent,
		}
	}
	return out, nil
}

type aggregateRow struct {
	TopicCode     string  `db:"topic_code"`
	TopicName     *string `db:"topic_name"`
	TopicCategory *string `db:"topic_category"`
	ImportanceSum int64   `db:"importance_sum"`
	ImpactSum     int64   `db:"impact_sum"`
	Count         int64   `db:"response_count"`
	MinImportance int     `db:"min_importance"`
	MaxImportance int     `db:"max_importance"`
	MinImpact     int     `db:"min_impact"`
	MaxImpact     int     `db:"max_impact"`
}

// TopicAggregates returns raw per-topic totals. Topic name and category come
// from a LEFT JOIN and are nil for codes with no topic row. The result is not
// ordered; ranking needs the exact averages and belongs to the caller.
func (r *Repo) TopicAggregates(ctx context.Context, surveyID int64) ([]domain.TopicAggregate, error) {
	query, args, err := psql.
		Select(
			"r.topic_code",
			"t.name AS topic_name",
			"t.category AS topic_category",
			"sum(r.importance) AS importance_sum",
			"sum(r.impact) AS impact_sum",
			"count(*) AS response_count",
			"min(r.importance) AS min_importance",
			"max(r.importance) AS max_importance",
			"min(r.impact) AS min_impact",
			"max(r.impact) AS max_impact",
		).
		From("survey_responses r").
		LeftJoin("survey_topics t ON t.survey_id = r.survey_id AND t.code = r.topic_code").
		Where(sq.Eq{"r.survey_id": surveyID}).
		GroupBy("r.topic_code", "t.name", "t.category").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build topic aggregates query: %w", err)
	}

	var rows []aggregateRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("topic aggregates for survey %d: %w", surveyID, err)
	}

	out := make([]domain.TopicAggregate, len(rows))
	for i, row := range rows {
		out[i] = domain.TopicAggregate{
			TopicCode:     domain.TopicCode(row.TopicCode),
			TopicName:     row.TopicName,
			TopicCategory: row.TopicCategory,
			ImportanceSum: row.ImportanceSum,
			ImpactSum:     row.ImpactSum,
			Count:         row.Count,
			MinImportance: row.MinImportance,
			MaxImportance: row.MaxImportance,
			MinImpact:     row.MinImpact,
			MaxImpact:     row.MaxImpact,
		}
	}
	return out, nil
}

type commentRow struct {
	TopicCode        string    `db:"topic_code"`
	TopicName        *string   `db:"topic_name"`
	StakeholderName  string    `db:"stakeholder_name"`
	StakeholderEmail string    `db:"stakeholder_email"`
	Comment          string    `db:"comment"`
	SubmittedAt      time.Time `db:"submitted_at"`
}

// ListComments returns rows with a non-empty comment, newest first.
func (r *Repo) ListComments(ctx context.Context, surveyID int64) ([]domain.Comment, error) {
	var rows []commentRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listCommentsSQL, surveyID); err != nil {
		return nil, fmt.Errorf("list comments for survey %d: %w", surveyID, err)
	}

	out := make([]domain.Comment, len(rows))
	for i, row := range rows {
		out[i] = domain.Comment{
			TopicCode:        domain.TopicCode(row.TopicCode),
			TopicName:        row.TopicName,
			StakeholderName:  row.StakeholderName,
			StakeholderEmail: row.StakeholderEmail,
			Comment:          row.Comment,
			SubmittedAt:      row.SubmittedAt,
		}
	}
	return out, nil
}
