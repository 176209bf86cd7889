package survey

import (
	"context"
	"fmt"

	"github.com/sustainage/materiality-survey/internal/domain"
)

// ListSurveys returns surveys matching status ("" or "all" for every survey),
// newest first.
func (s *Service) ListSurveys(ctx context.Context, status string) ([]ListEntry, error) {
	filter, ok := domain.ParseStatusFilter(status)
	if !ok {
		return nil, domain.NewValidationError("status", "must be one of active, closed, draft, all")
	}

	items, err := s.surveys.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list surveys: %w", err)
	}

	entries := make([]ListEntry, len(items))
	for i, item := range items {
		entries[i] = ListEntry{
			SurveyListItem:  item,
			DistributionURL: s.DistributionURL(item.Token),
		}
	}
	return entries, nil
}
