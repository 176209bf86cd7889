package survey

import (
	"context"
	"fmt"

	"github.com/sustainage/materiality-survey/internal/domain"
)

// GetSurvey returns one survey with its topics in display order.
func (s *Service) GetSurvey(ctx context.Context, id int64) (*Detail, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("survey_id", "required")
	}

	sv, err := s.surveys.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get survey: %w", err)
	}

	topics, err := s.topics.ListBySurvey(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	return &Detail{
		Survey:          *sv,
		Topics:          topics,
		DistributionURL: s.DistributionURL(sv.Token),
	}, nil
}
