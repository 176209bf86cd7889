package survey

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sustainage/materiality-survey/internal/domain"
)

// UpdateStatus moves a survey to another status. Any of the three states may
// follow any other.
func (s *Service) UpdateStatus(ctx context.Context, actor string, input UpdateStatusInput) (*domain.Survey, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	next := domain.SurveyStatus(input.Status)

	var updated *domain.Survey
	var previous domain.SurveyStatus
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.surveys.GetByIDForUpdate(txCtx, input.SurveyID)
		if getErr != nil {
			return fmt.Errorf("get survey: %w", getErr)
		}
		previous = current.Status

		if updErr := s.surveys.UpdateStatus(txCtx, input.SurveyID, next); updErr != nil {
			return fmt.Errorf("update status: %w", updErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			Action:     domain.AuditActionUpdateStatus,
			EntityType: domain.EntityTypeSurvey,
			EntityID:   input.SurveyID,
			Actor:      actor,
			Changes: map[string]any{
				"status": map[string]any{"old": string(previous), "new": string(next)},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		current.Status = next
		current.UpdatedAt = s.now()
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "survey status updated",
		slog.Int64("survey_id", input.SurveyID),
		slog.String("old", string(previous)),
		slog.String("new", string(next)),
		slog.String("actor", actor),
	)

	return updated, nil
}
