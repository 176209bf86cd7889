package report

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/sustainage/materiality-survey/internal/domain"
)

// GroupedResult is the per-stakeholder view of a survey.
type GroupedResult struct {
	Survey       domain.Survey
	Stakeholders []domain.StakeholderResponse
}

// GroupedResponses returns one entry per stakeholder email in order of their
// latest submission, newest first. Profile, date and address come from the
// newest row; evaluations are the rows of the newest submission only, in
// topic display order. Older submissions are never merged in.
func (s *Service) GroupedResponses(ctx context.Context, ref SurveyRef) (*GroupedResult, error) {
	sv, err := s.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}

	var (
		rows   []domain.Response
		topics []domain.Topic
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.responses.ListBySurvey(gctx, sv.ID)
		return err
	})
	g.Go(func() error {
		var err error
		topics, err = s.topics.ListBySurvey(gctx, sv.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("read survey %d responses: %w", sv.ID, err)
	}

	return &GroupedResult{
		Survey:       *sv,
		Stakeholders: groupByStakeholder(rows, topics),
	}, nil
}

// groupByStakeholder expects rows newest first.
func groupByStakeholder(rows []domain.Response, topics []domain.Topic) []domain.StakeholderResponse {
	order := make(map[domain.TopicCode]int, len(topics))
	for _, t := range topics {
		order[t.Code] = t.DisplayOrder
	}
	position := func(code domain.TopicCode) int {
		if p, ok := order[code]; ok {
			return p
		}
		return math.MaxInt
	}

	index := make(map[string]int)
	out := make([]domain.StakeholderResponse, 0)
	for _, r := range rows {
		i, seen := index[r.Stakeholder.Email]
		if !seen {
			i = len(out)
			index[r.Stakeholder.Email] = i
			out = append(out, domain.StakeholderResponse{
				Stakeholder:  r.Stakeholder,
				SubmissionID: r.SubmissionID,
				ResponseDate: r.SubmittedAt,
				IPAddress:    r.IPAddress,
			})
		}
		if out[i].SubmissionID != r.SubmissionID {
			continue
		}
		out[i].Evaluations = append(out[i].Evaluations, domain.Evaluation{
			TopicCode:  r.TopicCode,
			TopicName:  r.TopicName,
			Importance: r.Importance,
			Impact:     r.Impact,
			Comment:    r.Comment,
		})
	}

	for i := range out {
		slices.SortStableFunc(out[i].Evaluations, func(a, b domain.Evaluation) int {
			if c := cmp.Compare(position(a.TopicCode), position(b.TopicCode)); c != 0 {
				return c
			}
			return cmp.Compare(a.TopicCode, b.TopicCode)
		})
	}
	return out
}
