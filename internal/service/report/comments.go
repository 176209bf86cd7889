package report

import (
	"context"
	"fmt"

	"github.com/sustainage/materiality-survey/internal/domain"
)

// Comments returns every non-empty comment of a survey, newest first.
func (s *Service) Comments(ctx context.Context, surveyID int64) ([]domain.Comment, error) {
	if _, err := s.resolve(ctx, SurveyRef{ID: surveyID}); err != nil {
		return nil, err
	}

	comments, err := s.responses.ListComments(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// DefaultAuditLimit caps AuditTrail when the caller gives no limit.
const DefaultAuditLimit = 50

// AuditTrail returns the newest audit records of a survey. The survey may
// already be deleted.
func (s *Service) AuditTrail(ctx context.Context, surveyID int64, limit int) ([]domain.AuditRecord, error) {
	if surveyID <= 0 {
		return nil, domain.NewValidationError("survey_id", "required")
	}
	if limit <= 0 || limit > 500 {
		limit = DefaultAuditLimit
	}

	records, err := s.audit.ListByEntity(ctx, domain.EntityTypeSurvey, surveyID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}
	return records, nil
}
