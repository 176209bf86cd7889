package survey

import (
	"strconv"
	"strings"
	"time"

	"github.com/sustainage/materiality-survey/internal/auth"
	"github.com/sustainage/materiality-survey/internal/domain"
)

const (
	maxNameLength        = 255
	maxDescriptionLength = 5000
	maxTopicCodeLength   = 64
)

// TopicInput is one topic of a creation payload.
type TopicInput struct {
	Code        string
	Name        string
	Category    string
	Description string
}

// CreateSurveyInput holds the parameters for creating a survey.
// Deadline accepts YYYY-MM-DD or RFC3339; empty means the configured default.
type CreateSurveyInput struct {
	Name        string
	CompanyName string
	SurveyType  string
	Description string
	Deadline    string
	Status      string
	Token       string
	Topics      []TopicInput
}

// Validate checks all fields and collects all errors.
func (i CreateSurveyInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}
	if strings.TrimSpace(i.CompanyName) == "" {
		errs = append(errs, domain.FieldError{Field: "company_name", Message: "required"})
	}
	if len(i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	if len(i.Topics) == 0 {
		errs = append(errs, domain.FieldError{Field: "topics", Message: "at least one topic required"})
	}

	if i.Status != "" && !domain.SurveyStatus(i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of draft, active, closed"})
	}
	if i.Deadline != "" {
		if _, err := parseDeadline(i.Deadline); err != nil {
			errs = append(errs, domain.FieldError{Field: "deadline", Message: "must be YYYY-MM-DD or RFC3339"})
		}
	}
	if i.Token != "" && !auth.ValidToken(i.Token) {
		errs = append(errs, domain.FieldError{Field: "token", Message: "must be 32-128 lower-case hex characters"})
	}

	seen := make(map[string]bool, len(i.Topics))
	for idx, t := range i.Topics {
		code := strings.TrimSpace(t.Code)
		switch {
		case code == "":
			errs = append(errs, domain.FieldError{Field: topicField(idx, "code"), Message: "required"})
		case len(code) > maxTopicCodeLength:
			errs = append(errs, domain.FieldError{Field: topicField(idx, "code"), Message: "max 64 characters"})
		case seen[code]:
			errs = append(errs, domain.FieldError{Field: topicField(idx, "code"), Message: "duplicate code"})
		}
		seen[code] = true

		if strings.TrimSpace(t.Name) == "" {
			errs = append(errs, domain.FieldError{Field: topicField(idx, "name"), Message: "required"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func topicField(idx int, name string) string {
	return "topics[" + strconv.Itoa(idx) + "]." + name
}

// UpdateStatusInput holds the parameters for a status transition.
type UpdateStatusInput struct {
	SurveyID int64
	Status   string
}

// Validate checks all fields and collects all errors.
func (i UpdateStatusInput) Validate() error {
	var errs []domain.FieldError
	if i.SurveyID <= 0 {
		errs = append(errs, domain.FieldError{Field: "survey_id", Message: "required"})
	}
	if !domain.SurveyStatus(i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of draft, active, closed"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

const dateOnly = "2006-01-02"

// parseDeadline reads a caller deadline. A bare date is inclusive: the
// survey stays open until the last microsecond of that UTC day.
func parseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(dateOnly, s); err == nil {
		return d.AddDate(0, 0, 1).Add(-time.Microsecond), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
