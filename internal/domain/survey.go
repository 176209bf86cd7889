package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultSurveyType is used when the creator does not tag a survey.
const DefaultSurveyType = "materiality"

// Rating bounds shared by importance and impact scales.
const (
	MinScore = 1
	MaxScore = 5
)

// MaxUserAgentLength is the number of characters kept from a client identifier.
const MaxUserAgentLength = 255

// TopicCode is the caller-supplied key of a topic inside one survey. Responses
// reference topics by code only; storage does not enforce the link.
type TopicCode string

func (c TopicCode) String() string { return string(c) }

// Survey is a named set of topics distributed to stakeholders by token.
type Survey struct {
	ID            int64
	Token         string
	Name          string
	CompanyName   string
	SurveyType    string
	Description   string
	Status        SurveyStatus
	Deadline      time.Time
	ResponseCount int
	CreatorRef    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Expired reports whether the deadline is strictly before now.
func (s *Survey) Expired(now time.Time) bool {
	return s.Deadline.Before(now)
}

// AcceptingResponses returns nil when a submission may be recorded at now,
// or the StateError explaining why not. Status is checked before deadline.
func (s *Survey) AcceptingResponses(now time.Time) error {
	if s.Status != SurveyStatusActive {
		return ErrSurveyClosed
	}
	if s.Expired(now) {
		return ErrSurveyExpired
	}
	return nil
}

// SurveyListItem is a survey as shown in operator listings.
type SurveyListItem struct {
	Survey
	TopicCount int
}

// Topic is one theme of a survey.
type Topic struct {
	SurveyID     int64
	Code         TopicCode
	Name         string
	Category     string
	Description  string
	DisplayOrder int
}

// TopicRejection explains why one topic was not stored, either during survey
// creation or during a submission.
type TopicRejection struct {
	Code   TopicCode
	Name   string
	Reason string
}

// Stakeholder identifies a respondent within one survey. Email is the identity.
type Stakeholder struct {
	Name         string
	Email        string
	Organization string
	Role         string
}

// NormalizeEmail trims and lower-cases an address so that distinct-email
// counting does not depend on letter case.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Response is one stakeholder's rating of one topic.
type Response struct {
	ID           int64
	SurveyID     int64
	SubmissionID uuid.UUID
	Stakeholder  Stakeholder
	TopicCode    TopicCode
	TopicName    string
	Importance   int
	Impact       int
	Comment      string
	SubmittedAt  time.Time
	IPAddress    string
	UserAgent    string
}

// ValidScore reports whether v is inside the rating scale.
func ValidScore(v int) bool {
	return v >= MinScore && v <= MaxScore
}

// TruncateUserAgent limits a client identifier to MaxUserAgentLength runes.
func TruncateUserAgent(ua string) string {
	r := []rune(ua)
	if len(r) <= MaxUserAgentLength {
		return ua
	}
	return string(r[:MaxUserAgentLength])
}

// AuditRecord is an append-only log entry.
type AuditRecord struct {
	ID         uuid.UUID
	Action     AuditAction
	EntityType EntityType
	EntityID   int64
	Actor      string
	Changes    map[string]any
	CreatedAt  time.Time
}
