package validation

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrInvalidUUID = fmt.Errorf("invalid UUID format")
)

const dateLayout = "2006-01-02"

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUUID, id)
	}
	return nil
}

// validateDate records a field error unless value is a YYYY-MM-DD date.
func validateDate(errors map[string]string, field, value string) {
	if strings.TrimSpace(value) == "" {
		errors[field] = field + " is required"
		return
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		errors[field] = "must be in YYYY-MM-DD format"
	}
}

// validateRequired records a field error when value is blank.
func validateRequired(errors map[string]string, field, value string) {
	if strings.TrimSpace(value) == "" {
		errors[field] = field + " is required"
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
