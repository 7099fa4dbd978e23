package validation

import "testing"

func TestFieldError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *FieldError
		expected string
	}{
		{"Required", required("task_name"), "task_name is required"},
		{"Malformed", malformed("task_date", "soon", "expected YYYY-MM-DD HH:MM:SS"), "task_date soon: expected YYYY-MM-DD HH:MM:SS"},
		{"Out of range", outOfRange("position", 0, "must be a positive integer"), "position 0: must be a positive integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("FieldError.Error() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
