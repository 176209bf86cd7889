package report

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/sustainage/materiality-survey/internal/domain"
)

const scorePlaces = 2

// Summary returns per-topic statistics for a survey. Averages and the
// materiality score are rounded half away from zero to two places; the
// score multiplies the exact averages. Topics are ranked by exact average
// importance, then exact average impact, both descending, then by code.
func (s *Service) Summary(ctx context.Context, surveyID int64) (*domain.Summary, error) {
	if _, err := s.resolve(ctx, SurveyRef{ID: surveyID}); err != nil {
		return nil, err
	}

	var (
		aggs         []domain.TopicAggregate
		stakeholders int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		aggs, err = s.responses.TopicAggregates(gctx, surveyID)
		return err
	})
	g.Go(func() error {
		var err error
		stakeholders, err = s.responses.CountStakeholders(gctx, surveyID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("read survey %d statistics: %w", surveyID, err)
	}

	ranked := make([]rankedStats, 0, len(aggs))
	for _, a := range aggs {
		if a.Count == 0 {
			continue
		}
		ranked = append(ranked, computeStats(a))
	}

	slices.SortFunc(ranked, func(a, b rankedStats) int {
		if c := b.avgImportance.Cmp(a.avgImportance); c != 0 {
			return c
		}
		if c := b.avgImpact.Cmp(a.avgImpact); c != 0 {
			return c
		}
		return cmp.Compare(a.stats.TopicCode, b.stats.TopicCode)
	})

	topics := make([]domain.TopicStats, len(ranked))
	for i, r := range ranked {
		topics[i] = r.stats
	}

	s.log.DebugContext(ctx, "summary computed",
		slog.Int64("survey_id", surveyID),
		slog.Int("topics", len(topics)),
		slog.Int64("stakeholders", stakeholders),
	)

	return &domain.Summary{
		SurveyID:          surveyID,
		TotalStakeholders: stakeholders,
		Topics:            topics,
	}, nil
}

// rankedStats keeps the exact averages next to the rounded output.
type rankedStats struct {
	stats         domain.TopicStats
	avgImportance decimal.Decimal
	avgImpact     decimal.Decimal
}

func computeStats(a domain.TopicAggregate) rankedStats {
	n := decimal.NewFromInt(a.Count)
	avgImportance := decimal.NewFromInt(a.ImportanceSum).Div(n)
	avgImpact := decimal.NewFromInt(a.ImpactSum).Div(n)
	materiality := avgImportance.Mul(avgImpact)

	return rankedStats{
		avgImportance: avgImportance,
		avgImpact:     avgImpact,
		stats: domain.TopicStats{
			TopicCode:        a.TopicCode,
			TopicName:        a.TopicName,
			TopicCategory:    a.TopicCategory,
			AvgImportance:    avgImportance.Round(scorePlaces).InexactFloat64(),
			AvgImpact:        avgImpact.Round(scorePlaces).InexactFloat64(),
			MaterialityScore: materiality.Round(scorePlaces).InexactFloat64(),
			ResponseCount:    a.Count,
			MinImportance:    a.MinImportance,
			MaxImportance:    a.MaxImportance,
			MinImpact:        a.MinImpact,
			MaxImpact:        a.MaxImpact,
		},
	}
}
