package domain

// SurveyStatus is the operator-controlled lifecycle state of a survey.
type SurveyStatus string

const (
	SurveyStatusDraft  SurveyStatus = "draft"
	SurveyStatusActive SurveyStatus = "active"
	SurveyStatusClosed SurveyStatus = "closed"
)

func (s SurveyStatus) String() string { return string(s) }

func (s SurveyStatus) IsValid() bool {
	switch s {
	case SurveyStatusDraft, SurveyStatusActive, SurveyStatusClosed:
		return true
	}
	return false
}

// StatusFilter selects surveys by status. StatusFilterAll matches every survey.
type StatusFilter string

const StatusFilterAll StatusFilter = "all"

// ParseStatusFilter maps an operator supplied filter to a StatusFilter.
// An empty string means all surveys.
func ParseStatusFilter(s string) (StatusFilter, bool) {
	if s == "" || s == string(StatusFilterAll) {
		return StatusFilterAll, true
	}
	if !SurveyStatus(s).IsValid() {
		return "", false
	}
	return StatusFilter(s), true
}

// Status returns the concrete status and false for StatusFilterAll.
func (f StatusFilter) Status() (SurveyStatus, bool) {
	if f == StatusFilterAll || f == "" {
		return "", false
	}
	return SurveyStatus(f), true
}

// TopicInsertMode controls how topics are persisted during survey creation.
type TopicInsertMode string

const (
	// TopicInsertAtomic stores the survey and all of its topics in one transaction.
	TopicInsertAtomic TopicInsertMode = "atomic"
	// TopicInsertBestEffort stores each topic independently and reports failures.
	TopicInsertBestEffort TopicInsertMode = "best_effort"
)

func (m TopicInsertMode) IsValid() bool {
	return m == TopicInsertAtomic || m == TopicInsertBestEffort
}

// ResubmissionPolicy decides what happens when an email responds to the same
// survey more than once.
type ResubmissionPolicy string

const (
	// ResubmissionReplace deletes the previous response set and stores the new one.
	ResubmissionReplace ResubmissionPolicy = "replace"
	// ResubmissionReject refuses any further submission from the same email.
	ResubmissionReject ResubmissionPolicy = "reject"
	// ResubmissionKeepLatest keeps every set; reports show the newest one per email.
	ResubmissionKeepLatest ResubmissionPolicy = "keep_latest"
)

func (p ResubmissionPolicy) IsValid() bool {
	switch p {
	case ResubmissionReplace, ResubmissionReject, ResubmissionKeepLatest:
		return true
	}
	return false
}

// AuditAction is the kind of change recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate       AuditAction = "CREATE"
	AuditActionUpdateStatus AuditAction = "UPDATE_STATUS"
	AuditActionDelete       AuditAction = "DELETE"
	AuditActionSubmit       AuditAction = "SUBMIT"
)

func (a AuditAction) String() string { return string(a) }

// EntityType identifies the kind of entity an audit record refers to.
type EntityType string

const (
	EntityTypeSurvey   EntityType = "SURVEY"
	EntityTypeResponse EntityType = "RESPONSE"
)

func (e EntityType) String() string { return string(e) }
