package validation

import "fmt"

// Kind classifies why a field was rejected
type Kind string

const (
	KindRequired   Kind = "required"
	KindMalformed  Kind = "malformed"
	KindOutOfRange Kind = "out_of_range"
)

// FieldError reports a single rejected input field. Services wrap it in an
// AppError as the cause, so the CLI only ever sees the AppError message.
type FieldError struct {
	Field  string
	Kind   Kind
	Value  any
	Reason string
}

func (fe *FieldError) Error() string {
	if fe.Kind == KindRequired {
		return fe.Field + " is required"
	}
	return fmt.Sprintf("%s %v: %s", fe.Field, fe.Value, fe.Reason)
}

func required(field string) *FieldError {
	return &FieldError{Field: field, Kind: KindRequired}
}

func malformed(field string, value any, reason string) *FieldError {
	return &FieldError{Field: field, Kind: KindMalformed, Value: value, Reason: reason}
}

func outOfRange(field string, value any, reason string) *FieldError {
	return &FieldError{Field: field, Kind: KindOutOfRange, Value: value, Reason: reason}
}
