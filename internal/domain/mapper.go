package domain

import (
	"task-tracker/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task. The row id is left
// for the database to assign.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		Name: domainTask.Name,
		Date: domainTask.Date,
		Done: domainTask.Done,
	}
}

// FromDatabase converts a database Task found at position to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task, position int) Task {
	return Task{
		Position: position,
		Name:     dbTask.Name,
		Date:     dbTask.Date,
		Done:     dbTask.Done,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task *TaskMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
	}
}
