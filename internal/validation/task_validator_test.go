package validation

import (
	"errors"
	"testing"
)

func kindOf(t *testing.T, err error) Kind {
	t.Helper()
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FieldError, got %T", err)
	}
	return fe.Kind
}

func TestTaskValidator_ValidateTaskName(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name      string
		taskName  string
		expectErr bool
	}{
		{"Plain name", "buy milk", false},
		{"Unicode", "café ☕", false},
		{"Empty", "", true},
		{"Spaces only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTaskName(tt.taskName)
			if (err != nil) != tt.expectErr {
				t.Fatalf("ValidateTaskName(%q) error = %v, expectErr %v", tt.taskName, err, tt.expectErr)
			}
			if err != nil && kindOf(t, err) != KindRequired {
				t.Errorf("kind = %s, expected %s", kindOf(t, err), KindRequired)
			}
		})
	}
}

func TestTaskValidator_ValidateDate(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name      string
		date      string
		expectErr bool
		kind      Kind
	}{
		{"Empty is allowed", "", false, ""},
		{"Valid", "2024-06-01 09:30:00", false, ""},
		{"Wrong shape", "2024-06-01", true, KindMalformed},
		{"Wrong shape words", "next week", true, KindMalformed},
		{"Impossible day", "2024-06-31 09:30:00", true, KindOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateDate(tt.date)
			if (err != nil) != tt.expectErr {
				t.Fatalf("ValidateDate(%q) error = %v, expectErr %v", tt.date, err, tt.expectErr)
			}
			if err != nil && kindOf(t, err) != tt.kind {
				t.Errorf("kind = %s, expected %s", kindOf(t, err), tt.kind)
			}
		})
	}
}

func TestTaskValidator_ValidatePosition(t *testing.T) {
	validator := NewTaskValidator()

	if err := validator.ValidatePosition(1); err != nil {
		t.Errorf("ValidatePosition(1) unexpected error: %v", err)
	}
	for _, position := range []int{0, -1} {
		err := validator.ValidatePosition(position)
		if err == nil {
			t.Fatalf("ValidatePosition(%d) expected error", position)
		}
		if kindOf(t, err) != KindOutOfRange {
			t.Errorf("ValidatePosition(%d) kind = %s", position, kindOf(t, err))
		}
	}
}
