package validation

import (
	"regexp"
	"strings"
	"time"

	"task-tracker/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	dateShapeRegex *regexp.Regexp
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		dateShapeRegex: regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`),
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsWellFormedDate checks the exact YYYY-MM-DD HH:MM:SS shape, digit for digit.
// time.Parse alone would accept a single-digit hour.
func (v *Validator) IsWellFormedDate(date string) bool {
	return v.dateShapeRegex.MatchString(date)
}

// IsValidCalendarDate checks that a well-formed date names a real instant,
// rejecting e.g. February 30th or hour 24.
func (v *Validator) IsValidCalendarDate(date string) bool {
	_, err := domain.ParseDate(date, time.UTC)
	return err == nil
}

// IsValidPosition checks if a task position is valid (1-based)
func (v *Validator) IsValidPosition(position int) bool {
	return position >= 1
}
