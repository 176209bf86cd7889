package response

import (
	"github.com/google/uuid"

	"github.com/sustainage/materiality-survey/internal/domain"
)

// SubmitResult is the outcome of an accepted submission. Rejected lists the
// topics that were skipped; the submission as a whole still succeeded.
type SubmitResult struct {
	SubmissionID  uuid.UUID
	Accepted      int
	Rejected      []domain.TopicRejection
	ResponseCount int
	Replaced      int64
}
