package errors

import (
	"errors"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		expected  string
	}{
		{"Validation", ErrorTypeValidation, "validation"},
		{"InvalidDate", ErrorTypeInvalidDate, "invalid_date"},
		{"InvalidInput", ErrorTypeInvalidInput, "invalid_input"},
		{"Storage", ErrorTypeStorage, "storage"},
		{"Timeout", ErrorTypeTimeout, "timeout"},
		{"Unknown", ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.errorType.String()
			if result != tt.expected {
				t.Errorf("ErrorType.String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "Error without cause",
			appError: &AppError{
				Type:    ErrorTypeValidation,
				Message: "no name was provided",
			},
			expected: "validation: no name was provided",
		},
		{
			name: "Error with cause",
			appError: &AppError{
				Type:    ErrorTypeStorage,
				Message: "insert failed",
				Cause:   errors.New("database is locked"),
			},
			expected: "storage: insert failed (caused by: database is locked)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			if result != tt.expected {
				t.Errorf("AppError.Error() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("original error")
	appError := &AppError{
		Type:    ErrorTypeStorage,
		Message: "wrapped error",
		Cause:   cause,
	}

	if appError.Unwrap() != cause {
		t.Errorf("AppError.Unwrap() = %v, want %v", appError.Unwrap(), cause)
	}
	if !errors.Is(appError, cause) {
		t.Errorf("errors.Is should find the cause")
	}
}

func TestAppError_Is(t *testing.T) {
	date1 := NewInvalidDateError("a", nil)
	date2 := NewInvalidDateError("b", nil)
	storage := NewStorageError("query", nil)

	tests := []struct {
		name     string
		err      *AppError
		target   error
		expected bool
	}{
		{"Same type and code", date1, date2, true},
		{"Different type", date1, storage, false},
		{"Regular error", date1, errors.New("regular error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Is(tt.target)
			if result != tt.expected {
				t.Errorf("AppError.Is() = %v, want %v", result, tt.expected)
			}
		})
	}
}
