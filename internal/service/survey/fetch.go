package survey

import (
	"context"
	"fmt"

	"github.com/sustainage/materiality-survey/internal/domain"
)

// FetchByToken resolves a distribution link. The outcomes are distinct:
// domain.ErrNotFound, ErrSurveyClosed (also for drafts), ErrSurveyExpired,
// ErrSurveyNoTopics, or the survey with its ordered topics.
func (s *Service) FetchByToken(ctx context.Context, token string) (*PublicSurvey, error) {
	sv, err := s.surveys.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("get survey by token: %w", err)
	}

	if err := sv.AcceptingResponses(s.now()); err != nil {
		return nil, err
	}

	topics, err := s.topics.ListBySurvey(ctx, sv.ID)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	if len(topics) == 0 {
		return nil, domain.ErrSurveyNoTopics
	}

	return &PublicSurvey{Survey: *sv, Topics: topics}, nil
}
