package services

import (
	"context"
	"iter"
	"time"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/repository/sqlite"
)

// Clock returns the current time. Lateness is evaluated against it on every read.
type Clock func() time.Time

// Report is the aggregate completion and lateness summary of all tasks.
// Late only counts tasks that are not done.
type Report struct {
	Total   int `json:"total"`
	Done    int `json:"done"`
	Pending int `json:"pending"`
	Late    int `json:"late"`
}

// DoneRatio is Done/Total, or 0 when there are no tasks.
func (r Report) DoneRatio() float64 {
	return ratio(r.Done, r.Total)
}

// LateRatio is Late/Pending, or 0 when every task is done.
func (r Report) LateRatio() float64 {
	return ratio(r.Late, r.Pending)
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

// TaskService handles task lifecycle operations. Tasks are addressed by
// their 1-based position in creation order.
type TaskService interface {
	// Task CRUD operations
	CreateTask(ctx context.Context, name, date string) (*domain.Task, error)
	GetTask(ctx context.Context, position int) (*domain.Task, error)
	RenameTask(ctx context.Context, position int, name string) error
	SetDone(ctx context.Context, position int, done bool) error
	DeleteTask(ctx context.Context, position int) error

	// Listing; each call reads storage afresh
	Tasks(ctx context.Context) iter.Seq2[domain.Task, error]
	ListTasks(ctx context.Context, signs config.Signs) iter.Seq2[string, error]
	RenderTasks(ctx context.Context, renderer *LineRenderer) iter.Seq2[string, error]
}

// ReportingService handles the completion and lateness report
type ReportingService interface {
	Report(ctx context.Context) (*Report, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TaskService      TaskService
	ReportingService ReportingService
}

// NewServiceContainer wires the services over one repository. A nil clock
// means time.Now.
func NewServiceContainer(repo sqlite.Repository, clock Clock) *ServiceContainer {
	taskService := NewTaskService(repo, clock)
	return &ServiceContainer{
		TaskService:      taskService,
		ReportingService: NewReportingService(taskService, clock),
	}
}
