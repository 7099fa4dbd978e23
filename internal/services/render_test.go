package services

import (
	"testing"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestLineRenderer_Render(t *testing.T) {
	renderer := NewLineRenderer(config.DefaultSigns(), false)

	tests := []struct {
		name     string
		task     domain.Task
		expected string
	}{
		{
			name:     "not done without date",
			task:     domain.Task{Position: 1, Name: "read"},
			expected: "[ ] 1. read",
		},
		{
			name:     "done with future date",
			task:     domain.Task{Position: 2, Name: "write", Date: "2030-01-01 00:00:00", Done: true},
			expected: "[✔] 2. write (2030-01-01 00:00:00)",
		},
		{
			name:     "late and done still warns",
			task:     domain.Task{Position: 3, Name: "file taxes", Date: "2023-04-15 23:59:59", Done: true},
			expected: "[✔] 3. file taxes (2023-04-15 23:59:59) ⚠",
		},
		{
			name:     "stored date that does not parse is never late",
			task:     domain.Task{Position: 4, Name: "legacy", Date: "someday"},
			expected: "[ ] 4. legacy (someday)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, renderer.Render(tt.task, fixedNow))
		})
	}
}

func TestLineRenderer_Render_Color(t *testing.T) {
	renderer := NewLineRenderer(config.DefaultSigns(), true)

	line := renderer.Render(domain.Task{Position: 7, Name: "paint fence", Date: "2023-05-05 10:00:00", Done: true}, fixedNow)

	assert.Contains(t, line, "7. paint fence")
	assert.Contains(t, line, "✔")
	assert.Contains(t, line, "⚠")
	assert.Contains(t, line, "2023-05-05 10:00:00")
}
