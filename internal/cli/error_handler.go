package cli

import (
	"fmt"

	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages prefixed with the failed operation
func (eh *ErrorHandler) Handle(operation string, err error) error {
	eh.log(operation, err)

	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("%s", errors.GetUserMessage(err))
	}

	return err
}

func (eh *ErrorHandler) log(operation string, err error) {
	if errors.ShouldLogError(err) {
		logging.Errorf("%s failed [%s]: %v", operation, errors.GetErrorCode(err), err)
	}
}
