package response

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/sustainage/materiality-survey/internal/domain"
	"github.com/sustainage/materiality-survey/pkg/ctxutil"
)

// Rejection reasons reported per topic.
const (
	reasonImportanceMissing = "importance missing"
	reasonImpactMissing     = "impact missing"
	reasonImportanceRange   = "importance out of range"
	reasonImpactRange       = "impact out of range"
	reasonCommentTooLong    = "comment too long"
)

// Submit records one stakeholder submission. Preconditions are checked in
// order and each fails the whole submission with nothing written: the survey
// id and token must match, the stakeholder must be valid, the survey must be
// active and not past its deadline. Topics with missing or out-of-range
// scores are skipped and returned in Rejected.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	sv, err := s.resolve(ctx, input.SurveyID, input.Token)
	if err != nil {
		return nil, err
	}

	if err := input.Stakeholder.Validate(); err != nil {
		return nil, err
	}
	stakeholder := input.Stakeholder.toDomain()

	if err := sv.AcceptingResponses(s.clock.Now()); err != nil {
		s.log.InfoContext(ctx, "submission refused",
			slog.Int64("survey_id", sv.ID),
			slog.String("reason", err.Error()),
		)
		return nil, err
	}

	topics, err := s.topics.ListBySurvey(ctx, sv.ID)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	if len(topics) == 0 {
		return nil, domain.ErrSurveyNoTopics
	}

	client := ctxutil.ClientFromCtx(ctx)
	submissionID := s.newID()
	submittedAt := s.now()

	var (
		rows     []domain.Response
		rejected []domain.TopicRejection
	)
	for _, t := range topics {
		rating, reason := s.checkRating(input.Ratings[t.Code])
		if reason != "" {
			rejected = append(rejected, domain.TopicRejection{Code: t.Code, Name: t.Name, Reason: reason})
			continue
		}
		rows = append(rows, domain.Response{
			SurveyID:     sv.ID,
			SubmissionID: submissionID,
			Stakeholder:  stakeholder,
			TopicCode:    t.Code,
			TopicName:    t.Name,
			Importance:   *rating.Importance,
			Impact:       *rating.Impact,
			Comment:      strings.TrimSpace(rating.Comment),
			SubmittedAt:  submittedAt,
			IPAddress:    client.IP,
			UserAgent:    domain.TruncateUserAgent(client.UserAgent),
		})
	}

	if len(rows) == 0 {
		errs := make([]domain.FieldError, len(rejected))
		for i, r := range rejected {
			errs[i] = domain.FieldError{Field: "ratings." + r.Code.String(), Message: r.Reason}
		}
		return nil, domain.NewValidationErrors(errs)
	}

	result := &SubmitResult{
		SubmissionID: submissionID,
		Accepted:     len(rows),
		Rejected:     rejected,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		locked, lockErr := s.surveys.GetByIDForUpdate(txCtx, sv.ID)
		if lockErr != nil {
			return fmt.Errorf("lock survey: %w", lockErr)
		}
		// Status or deadline may have changed since the first read.
		if stateErr := locked.AcceptingResponses(s.clock.Now()); stateErr != nil {
			return stateErr
		}

		replaced, policyErr := s.applyPolicy(txCtx, sv.ID, stakeholder.Email)
		if policyErr != nil {
			return policyErr
		}
		result.Replaced = replaced

		if _, insErr := s.responses.InsertBatch(txCtx, rows); insErr != nil {
			return fmt.Errorf("insert responses: %w", insErr)
		}

		count, cntErr := s.responses.RecomputeResponseCount(txCtx, sv.ID)
		if cntErr != nil {
			return fmt.Errorf("recompute response count: %w", cntErr)
		}
		result.ResponseCount = count

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			Action:     domain.AuditActionSubmit,
			EntityType: domain.EntityTypeSurvey,
			EntityID:   sv.ID,
			Actor:      stakeholder.Email,
			Changes: map[string]any{
				"stakeholder_name":  stakeholder.Name,
				"stakeholder_email": stakeholder.Email,
				"submission_id":     submissionID.String(),
				"accepted":          len(rows),
				"rejected":          len(rejected),
				"replaced":          replaced,
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrState) || errors.Is(err, domain.ErrAlreadyExists) ||
			errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		s.log.ErrorContext(ctx, "submission rolled back",
			slog.Int64("survey_id", sv.ID),
			slog.String("submission_id", submissionID.String()),
			slog.String("error", err.Error()),
		)
		return nil, domain.NewPersistenceError("record submission", err)
	}

	s.log.InfoContext(ctx, "submission recorded",
		slog.Int64("survey_id", sv.ID),
		slog.String("submission_id", submissionID.String()),
		slog.Int("accepted", result.Accepted),
		slog.Int("rejected", len(rejected)),
		slog.Int("response_count", result.ResponseCount),
	)

	return result, nil
}

// resolve returns the survey only when both id and token match it.
func (s *Service) resolve(ctx context.Context, surveyID int64, token string) (*domain.Survey, error) {
	if surveyID <= 0 || token == "" {
		return nil, fmt.Errorf("survey %d: %w", surveyID, domain.ErrNotFound)
	}

	sv, err := s.surveys.GetByID(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("get survey: %w", err)
	}
	if subtle.ConstantTimeCompare([]byte(sv.Token), []byte(token)) != 1 {
		return nil, fmt.Errorf("survey %d: token mismatch: %w", surveyID, domain.ErrNotFound)
	}
	return sv, nil
}

// checkRating returns the rating and "" when it can be stored, or the reason
// it was rejected.
func (s *Service) checkRating(r RatingInput) (RatingInput, string) {
	switch {
	case r.Importance == nil:
		return r, reasonImportanceMissing
	case r.Impact == nil:
		return r, reasonImpactMissing
	case !domain.ValidScore(*r.Importance):
		return r, reasonImportanceRange
	case !domain.ValidScore(*r.Impact):
		return r, reasonImpactRange
	case utf8.RuneCountInString(strings.TrimSpace(r.Comment)) > s.cfg.MaxCommentLength:
		return r, reasonCommentTooLong
	}
	return r, ""
}

// applyPolicy handles a repeat submission from the same email. It runs under
// the survey row lock, so concurrent submits of one survey see each other.
func (s *Service) applyPolicy(ctx context.Context, surveyID int64, email string) (int64, error) {
	switch domain.ResubmissionPolicy(s.cfg.ResubmissionPolicy) {
	case domain.ResubmissionReject:
		exists, err := s.responses.ExistsByEmail(ctx, surveyID, email)
		if err != nil {
			return 0, fmt.Errorf("check previous submission: %w", err)
		}
		if exists {
			return 0, fmt.Errorf("stakeholder already responded: %w", domain.ErrAlreadyExists)
		}
		return 0, nil
	case domain.ResubmissionKeepLatest:
		return 0, nil
	default:
		n, err := s.responses.DeleteByEmail(ctx, surveyID, email)
		if err != nil {
			return 0, fmt.Errorf("delete previous submission: %w", err)
		}
		return n, nil
	}
}
