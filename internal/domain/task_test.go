package domain

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	tests := []struct {
		name     string
		taskName string
		date     string
		expected Task
	}{
		{
			name:     "creates task without date",
			taskName: "Buy milk",
			expected: Task{Name: "Buy milk"},
		},
		{
			name:     "creates task with date",
			taskName: "New Task",
			date:     "2022-02-01 20:00:00",
			expected: Task{Name: "New Task", Date: "2022-02-01 20:00:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewTask(tt.taskName, tt.date)
			assert.Equal(t, tt.expected, result)
			assert.False(t, result.Done)
		})
	}
}

func TestTask_HasDate(t *testing.T) {
	assert.False(t, Task{Name: "x"}.HasDate())
	assert.True(t, Task{Name: "x", Date: "2022-02-01 20:00:00"}.HasDate())
}

func TestTask_String(t *testing.T) {
	assert.Equal(t, "My Task", Task{Position: 1, Name: "My Task"}.String())
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)

	parsed, err := ParseDate("2022-02-01 20:00:00", loc)
	require.NoError(t, err)
	assert.True(t, time.Date(2022, 2, 1, 20, 0, 0, 0, loc).Equal(parsed))

	_, err = ParseDate("2022-02-30 20:00:00", loc)
	assert.Error(t, err)
}

func TestIsLate(t *testing.T) {
	now := time.Date(2022, 2, 1, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     string
		now      time.Time
		expected bool
	}{
		{"empty date is never late", "", now, false},
		{"empty date far in the future", "", now.AddDate(100, 0, 0), false},
		{"due date in the past", "2022-01-31 23:59:59", now, true},
		{"due exactly now", "2022-02-01 20:00:00", now, true},
		{"due one second from now", "2022-02-01 20:00:01", now, false},
		{"due next year", "2023-02-01 20:00:00", now, false},
		{"unparseable date", "invalid date", now, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLate(tt.date, tt.now))
			assert.Equal(t, tt.expected, Task{Date: tt.date}.IsLate(tt.now))
		})
	}
}

func TestIsLate_UsesLocationOfNow(t *testing.T) {
	// 20:00 wall clock in UTC+2 is 18:00 UTC.
	plusTwo := time.FixedZone("UTC+2", 2*60*60)
	date := "2022-02-01 19:00:00"

	nowUTC := time.Date(2022, 2, 1, 18, 0, 0, 0, time.UTC)
	assert.False(t, IsLate(date, nowUTC), "19:00 UTC has not passed at 18:00 UTC")

	nowPlusTwo := nowUTC.In(plusTwo)
	assert.True(t, IsLate(date, nowPlusTwo), "19:00 in UTC+2 has passed at 20:00 UTC+2")
}

func TestIsLate_IgnoresDone(t *testing.T) {
	now := time.Date(2022, 2, 2, 0, 0, 0, 0, time.UTC)
	task := Task{Name: "done but overdue", Date: "2022-02-01 20:00:00", Done: true}
	assert.True(t, task.IsLate(now))
}

func TestIsLate_UsesOffsetAtEvaluationTime(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// 00:30 UTC on 2024-10-27 is 02:30 CEST, inside the hour that repeats
	// when clocks fall back to CET.
	now := time.Date(2024, 10, 27, 0, 30, 0, 0, time.UTC).In(berlin)
	_, offset := now.Zone()
	require.Equal(t, 2*60*60, offset)

	assert.True(t, IsLate("2024-10-27 02:20:00", now), "due ten minutes ago at +02:00")
	assert.False(t, IsLate("2024-10-27 02:40:00", now), "due in ten minutes at +02:00")

	// An hour later the wall clock reads 02:30 again, now at +01:00.
	later := now.Add(time.Hour)
	_, offset = later.Zone()
	require.Equal(t, 60*60, offset)
	assert.True(t, IsLate("2024-10-27 02:20:00", later))
	assert.False(t, IsLate("2024-10-27 02:40:00", later))
}
