// Package validate checks and normalizes intake submissions before they
// reach the store. Failures are collected per field rather than
// short-circuited so the caller can report every problem at once.
package validate

import (
	"html"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pauloatx/page-teste02/pkg/models"
)

// Submission is the wire shape of a create request.
type Submission struct {
	Name               string  `json:"name" validate:"required,min=3"`
	Email              string  `json:"email" validate:"required,email"`
	Phone              *string `json:"phone"`
	ServiceDescription string  `json:"serviceDescription" validate:"required,min=5"`
	ServiceDate        string  `json:"serviceDate" validate:"omitempty,datetime=2006-01-02"`
}

// FieldError is one validation failure, addressed by the JSON field name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report failures under the JSON field names clients actually sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Check trims the submission's text fields in place and returns every
// constraint violation. Length constraints apply to the trimmed values.
func Check(s *Submission) []FieldError {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.ServiceDescription = strings.TrimSpace(s.ServiceDescription)
	s.ServiceDate = strings.TrimSpace(s.ServiceDate)
	if s.Phone != nil {
		p := strings.TrimSpace(*s.Phone)
		s.Phone = &p
	}

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "body", Message: "invalid request"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "email":
		return fe.Field() + " must be a valid email"
	case "datetime":
		return fe.Field() + " must be a date in YYYY-MM-DD form"
	default:
		return fe.Field() + " is invalid"
	}
}

// Record converts a checked submission into the entity persisted by the
// store: HTML-sensitive characters are entity-escaped and the email is
// canonicalized to lower case. Must only be called after Check passed.
func (s *Submission) Record() models.ServiceRequest {
	sr := models.ServiceRequest{
		Name:               html.EscapeString(s.Name),
		Email:              strings.ToLower(s.Email),
		ServiceDescription: html.EscapeString(s.ServiceDescription),
		ServiceDate:        s.ServiceDate,
	}
	if s.Phone != nil && *s.Phone != "" {
		p := html.EscapeString(*s.Phone)
		sr.Phone = &p
	}
	return sr
}
