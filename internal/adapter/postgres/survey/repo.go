// Package survey implements the Survey repository using PostgreSQL.
package survey

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/sustainage/materiality-survey/internal/adapter/postgres"
	"github.com/sustainage/materiality-survey/internal/domain"
)

// Repo provides survey persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new survey repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const surveyColumns = `id, token, name, company_name, survey_type, description, status::text,
    deadline_at, response_count, creator_ref, created_at, updated_at`

const createSQL = `
INSERT INTO surveys (token, name, company_name, survey_type, description, status,
                     deadline_at, response_count, creator_ref, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $9, $9)
RETURNING id`

const getByIDSQL = `SELECT ` + surveyColumns + ` FROM surveys WHERE id = $1`

const getByIDForUpdateSQL = getByIDSQL + ` FOR UPDATE`

const getByTokenSQL = `SELECT ` + surveyColumns + ` FROM surveys WHERE token = $1`

const updateStatusSQL = `
UPDATE surveys SET status = $2, updated_at = now()
WHERE id = $1`

const deleteSQL = `DELETE FROM surveys WHERE id = $1`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a survey and returns it with the storage-generated id.
// ResponseCount is always stored as 0.
func (r *Repo) Create(ctx context.Context, s domain.Survey) (domain.Survey, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	err := q.QueryRow(ctx, createSQL,
		s.Token, s.Name, s.CompanyName, s.SurveyType, s.Description, string(s.Status),
		s.Deadline, s.CreatorRef, s.CreatedAt,
	).Scan(&s.ID)
	if err != nil {
		return domain.Survey{}, postgres.MapError(err, "survey", s.Name)
	}

	s.ResponseCount = 0
	s.UpdatedAt = s.CreatedAt
	return s, nil
}

// UpdateStatus sets the status of a survey.
// Returns domain.ErrNotFound if the survey does not exist.
func (r *Repo) UpdateStatus(ctx context.Context, id int64, status domain.SurveyStatus) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updateStatusSQL, id, string(status))
	if err != nil {
		return postgres.MapError(err, "survey", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("survey %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a survey; topics and responses go with it (ON DELETE CASCADE).
// Returns domain.ErrNotFound if the survey does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "survey", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("survey %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a survey by id.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Survey, error) {
	return r.getOne(ctx, getByIDSQL, id)
}

// GetByIDForUpdate returns a survey by id and locks its row until the
// surrounding transaction ends. Submissions to one survey serialize on it.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Survey, error) {
	return r.getOne(ctx, getByIDForUpdateSQL, id)
}

// GetByToken returns the survey that owns a distribution token.
func (r *Repo) GetByToken(ctx context.Context, token string) (*domain.Survey, error) {
	if token == "" {
		return nil, fmt.Errorf("survey token: %w", domain.ErrNotFound)
	}
	return r.getOne(ctx, getByTokenSQL, token)
}

func (r *Repo) getOne(ctx context.Context, query string, key any) (*domain.Survey, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, key)

	s, err := scanSurvey(row)
	if err != nil {
		if _, isToken := key.(string); isToken {
			key = "(token)"
		}
		return nil, postgres.MapError(err, "survey", key)
	}
	return &s, nil
}

// listRow mirrors the list query projection for pgxscan.
type listRow struct {
	ID            int64     `db:"id"`
	Token         string    `db:"token"`
	Name          string    `db:"name"`
	CompanyName   string    `db:"company_name"`
	SurveyType    string    `db:"survey_type"`
	Description   string    `db:"description"`
	Status        string    `db:"status"`
	DeadlineAt    time.Time `db:"deadline_at"`
	ResponseCount int       `db:"response_count"`
	CreatorRef    string    `db:"creator_ref"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
	TopicCount    int       `db:"topic_count"`
}

// List returns surveys matching filter, newest first, with their topic counts.
func (r *Repo) List(ctx context.Context, filter domain.StatusFilter) ([]domain.SurveyListItem, error) {
	qb := psql.
		Select(
			"s.id", "s.token", "s.name", "s.company_name", "s.survey_type", "s.description",
			"s.status::text AS status", "s.deadline_at", "s.response_count", "s.creator_ref",
			"s.created_at", "s.updated_at",
			"(SELECT count(*) FROM survey_topics t WHERE t.survey_id = s.id) AS topic_count",
		).
		From("surveys s").
		OrderBy("s.created_at DESC", "s.id DESC")

	if status, ok := filter.Status(); ok {
		qb = qb.Where(sq.Eq{"s.status": string(status)})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list surveys query: %w", err)
	}

	var rows []listRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list surveys: %w", err)
	}

	items := make([]domain.SurveyListItem, len(rows))
	for i, row := range rows {
		items[i] = domain.SurveyListItem{
			Survey: domain.Survey{
				ID:            row.ID,
				Token:         row.Token,
				Name:          row.Name,
				CompanyName:   row.CompanyName,
				SurveyType:    row.SurveyType,
				Description:   row.Description,
				Status:        domain.SurveyStatus(row.Status),
				Deadline:      row.DeadlineAt,
				ResponseCount: row.ResponseCount,
				CreatorRef:    row.CreatorRef,
				CreatedAt:     row.CreatedAt,
				UpdatedAt:     row.UpdatedAt,
			},
			TopicCount: row.TopicCount,
		}
	}
	return items, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanSurvey(row pgx.Row) (domain.Survey, error) {
	var (
		s      domain.Survey
		status string
	)
	err := row.Scan(
		&s.ID, &s.Token, &s.Name, &s.CompanyName, &s.SurveyType, &s.Description, &status,
		&s.Deadline, &s.ResponseCount, &s.CreatorRef, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return domain.Survey{}, err
	}
	s.Status = domain.SurveyStatus(status)
	return s, nil
}
