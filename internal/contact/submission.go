// Package contact holds the contact-form submission and the two emails it
// produces.
package contact

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

// MinMessageLength is the minimum length of a trimmed message, counted in
// UTF-16 code units.
const MinMessageLength = 10

var (
	ErrMissingFields   = errors.New("name, email, and message are required")
	ErrMessageTooShort = errors.New("message is too short")
)

// FieldTypeError reports a form field that is present but is not a string.
type FieldTypeError struct {
	Field string
	Value any
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("field %q must be a string, got %T", e.Field, e.Value)
}

// Submission is one contact-form entry. Fields are stored trimmed.
type Submission struct {
	Name    string `validate:"required"`
	Email   string `validate:"required"`
	Message string `validate:"required,utf16min=10"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		if err := validate.RegisterValidation("utf16min", minUTF16Length); err != nil {
			panic(err)
		}
	})
	return validate
}

func minUTF16Length(fl validator.FieldLevel) bool {
	want, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf16Length(fl.Field().String()) >= want
}

// utf16Length counts s the way browsers report string length.
func utf16Length(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// isFormSpace matches the characters a browser's String.prototype.trim removes:
// Unicode white space and line terminators plus the byte order mark, but not NEL.
func isFormSpace(r rune) bool {
	if r == '\ufeff' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// trim removes leading and trailing form white space.
func trim(s string) string {
	return strings.TrimFunc(s, isFormSpace)
}

// NewSubmission trims the raw fields and validates the result. Missing fields
// are reported before a short message.
func NewSubmission(name, email, message string) (*Submission, error) {
	sub := &Submission{
		Name:    trim(name),
		Email:   trim(email),
		Message: trim(message),
	}
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	return sub, nil
}

// ParseSubmission builds a Submission from decoded JSON values. Fields are
// checked in order name, email, message and the first absent, null or blank
// one stops the check with ErrMissingFields. A non-string value reached before
// that yields a *FieldTypeError.
func ParseSubmission(name, email, message any) (*Submission, error) {
	fields := [...]struct {
		label string
		value any
	}{
		{"name", name},
		{"email", email},
		{"message", message},
	}

	var text [len(fields)]string
	for i, f := range fields {
		switch v := f.value.(type) {
		case nil:
			return nil, ErrMissingFields
		case string:
			text[i] = trim(v)
			if text[i] == "" {
				return nil, ErrMissingFields
			}
		default:
			return nil, &FieldTypeError{Field: f.label, Value: v}
		}
	}
	return NewSubmission(text[0], text[1], text[2])
}

// Validate maps validator failures onto ErrMissingFields and ErrMessageTooShort.
func (s *Submission) Validate() error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	tooShort := false
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			return ErrMissingFields
		case "utf16min":
			tooShort = true
		}
	}
	if tooShort {
		return ErrMessageTooShort
	}
	return err
}
