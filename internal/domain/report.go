package domain

import (
	"time"

	"github.com/google/uuid"
)

// TopicAggregate holds the raw per-topic totals read from storage. Name and
// Category are nil when no topic row matches the code.
type TopicAggregate struct {
	TopicCode     TopicCode
	TopicName     *string
	TopicCategory *string
	ImportanceSum int64
	ImpactSum     int64
	Count         int64
	MinImportance int
	MaxImportance int
	MinImpact     int
	MaxImpact     int
}

// TopicStats is the computed per-topic line of a survey summary.
type TopicStats struct {
	TopicCode        TopicCode
	TopicName        *string
	TopicCategory    *string
	AvgImportance    float64
	AvgImpact        float64
	MaterialityScore float64
	ResponseCount    int64
	MinImportance    int
	MaxImportance    int
	MinImpact        int
	MaxImpact        int
}

// Summary is the aggregated view of a survey.
type Summary struct {
	SurveyID          int64
	TotalStakeholders int64
	Topics            []TopicStats
}

// Evaluation is one topic rating inside a grouped response.
type Evaluation struct {
	TopicCode  TopicCode
	TopicName  string
	Importance int
	Impact     int
	Comment    string
}

// StakeholderResponse groups one stakeholder's latest submission.
type StakeholderResponse struct {
	Stakeholder
	SubmissionID uuid.UUID
	ResponseDate time.Time
	IPAddress    string
	Evaluations  []Evaluation
}

// Comment is a non-empty free-text remark on a topic.
type Comment struct {
	TopicCode        TopicCode
	TopicName        *string
	StakeholderName  string
	StakeholderEmail string
	Comment          string
	SubmittedAt      time.Time
}
