package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	domainErrors "github.com/polkiloo/kicktracker/internal/domain/errors"
	"github.com/polkiloo/kicktracker/internal/domain/model"
)

const (
	maxNoteLength = 500
	// bcrypt ignores everything past 72 bytes and x/crypto refuses such input.
	maxPasswordBytes = 72
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type registration struct {
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required"`
	Name     string `validate:"omitempty,max=100"`
}

// NormalizeEmail trims and lower-cases an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateRegistration checks registration input, returning ErrInvalidInput on failure.
func ValidateRegistration(email, password string, name *string) error {
	in := registration{Email: email, Password: password}
	if name != nil {
		in.Name = *name
	}
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", domainErrors.ErrInvalidInput, describe(err))
	}
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("%w: password is too long", domainErrors.ErrInvalidInput)
	}
	return nil
}

// ValidateNote enforces the note length limit.
func ValidateNote(note *string) error {
	if note == nil {
		return nil
	}
	if err := validate.Var(*note, fmt.Sprintf("max=%d", maxNoteLength)); err != nil {
		return fmt.Errorf("%w: note must be at most %d characters", domainErrors.ErrInvalidInput, maxNoteLength)
	}
	return nil
}

// ParseDay parses a YYYY-MM-DD calendar date as midnight in loc.
func ParseDay(day string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(model.DayLayout, day, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", domainErrors.ErrInvalidInput)
	}
	return t, nil
}

func describe(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err.Error()
	}
	fe := errs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

func optionalString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
