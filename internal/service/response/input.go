package response

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sustainage/materiality-survey/internal/domain"
)

var validate = validator.New()

// StakeholderInput identifies the respondent.
type StakeholderInput struct {
	Name         string `validate:"required,max=255"`
	Email        string `validate:"required,max=255,email"`
	Organization string `validate:"max=255"`
	Role         string `validate:"max=255"`
}

// RatingInput is one topic rating. Nil scores mean the field was not sent.
type RatingInput struct {
	Importance *int
	Impact     *int
	Comment    string
}

// SubmitInput holds one submission, keyed by topic code.
type SubmitInput struct {
	SurveyID    int64
	Token       string
	Stakeholder StakeholderInput
	Ratings     map[domain.TopicCode]RatingInput
}

var stakeholderFields = map[string]string{
	"Name":         "stakeholder.name",
	"Email":        "stakeholder.email",
	"Organization": "stakeholder.organization",
	"Role":         "stakeholder.role",
}

// Validate checks the stakeholder fields and collects all errors.
// Ratings are checked per topic during Submit.
func (i StakeholderInput) Validate() error {
	trimmed := StakeholderInput{
		Name:         strings.TrimSpace(i.Name),
		Email:        strings.TrimSpace(i.Email),
		Organization: strings.TrimSpace(i.Organization),
		Role:         strings.TrimSpace(i.Role),
	}

	err := validate.Struct(trimmed)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	errs := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, domain.FieldError{
			Field:   stakeholderFields[fe.Field()],
			Message: fieldMessage(fe),
		})
	}
	return domain.NewValidationErrors(errs)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "invalid email address"
	case "max":
		return "max " + fe.Param() + " characters"
	}
	return "invalid"
}

func (i StakeholderInput) toDomain() domain.Stakeholder {
	return domain.Stakeholder{
		Name:         strings.TrimSpace(i.Name),
		Email:        domain.NormalizeEmail(i.Email),
		Organization: strings.TrimSpace(i.Organization),
		Role:         strings.TrimSpace(i.Role),
	}
}
