package survey

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sustainage/materiality-survey/internal/domain"
)

// DeleteSurvey removes a survey together with its topics and responses.
func (s *Service) DeleteSurvey(ctx context.Context, actor string, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("survey_id", "required")
	}

	var deleted *domain.Survey
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		sv, getErr := s.surveys.GetByIDForUpdate(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("get survey: %w", getErr)
		}
		deleted = sv

		if delErr := s.surveys.Delete(txCtx, id); delErr != nil {
			return fmt.Errorf("delete survey: %w", delErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			Action:     domain.AuditActionDelete,
			EntityType: domain.EntityTypeSurvey,
			EntityID:   id,
			Actor:      actor,
			Changes: map[string]any{
				"name":           map[string]any{"old": sv.Name},
				"response_count": sv.ResponseCount,
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "survey deleted",
		slog.Int64("survey_id", id),
		slog.String("name", deleted.Name),
		slog.Int("response_count", deleted.ResponseCount),
		slog.String("actor", actor),
	)

	return nil
}
