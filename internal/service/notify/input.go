package notify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sustainage/materiality-survey/internal/domain"
)

// MaxRecipients bounds one send request.
const MaxRecipients = 500

var validate = validator.New()

// Recipient is one addressee. Name is optional.
type Recipient struct {
	Email string `validate:"required,max=255,email"`
	Name  string `validate:"max=255"`
}

// validateRecipients checks every address and returns the normalized list
// with duplicate emails removed, first occurrence kept.
func validateRecipients(recipients []Recipient) ([]Recipient, error) {
	if len(recipients) == 0 {
		return nil, domain.NewValidationError("recipients", "required")
	}
	if len(recipients) > MaxRecipients {
		return nil, domain.NewValidationError("recipients", fmt.Sprintf("max %d recipients", MaxRecipients))
	}

	var errs []domain.FieldError
	seen := make(map[string]bool, len(recipients))
	out := make([]Recipient, 0, len(recipients))

	for i, r := range recipients {
		r = Recipient{Email: strings.TrimSpace(r.Email), Name: strings.TrimSpace(r.Name)}

		if err := validate.Struct(r); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				return nil, err
			}
			for _, fe := range verrs {
				errs = append(errs, domain.FieldError{
					Field:   fmt.Sprintf("recipients[%d].%s", i, strings.ToLower(fe.Field())),
					Message: fieldMessage(fe),
				})
			}
			continue
		}

		r.Email = domain.NormalizeEmail(r.Email)
		if seen[r.Email] {
			continue
		}
		seen[r.Email] = true
		out = append(out, r)
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return out, nil
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

// displayName falls back to a name derived from the address local part,
// "jane.doe@x" becomes "Jane Doe".
func displayName(r Recipient) string {
	if r.Name != "" {
		return r.Name
	}
	local, _, _ := strings.Cut(r.Email, "@")
	words := strings.FieldsFunc(local, func(c rune) bool {
		return c == '.' || c == '_' || c == '-' || c == '+'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
