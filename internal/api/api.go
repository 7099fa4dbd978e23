package api

import (
	"context"
	"iter"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/repository/sqlite"
	"task-tracker/internal/services"
)

// API is the set of task operations the command line drives.
// Positions are 1-based and recomputed from storage on every call.
type API interface {
	// Task operations
	AddTask(ctx context.Context, name, date string) (*domain.Task, error)
	GetTask(ctx context.Context, position int) (*domain.Task, error)
	CheckTask(ctx context.Context, position int) error
	UncheckTask(ctx context.Context, position int) error
	RenameTask(ctx context.Context, position int, name string) error
	DeleteTask(ctx context.Context, position int) error

	// Listing and reporting
	ListLines(ctx context.Context, signs config.Signs, color bool) iter.Seq2[string, error]
	Report(ctx context.Context) (*services.Report, error)
}

type apiImpl struct {
	services *services.ServiceContainer
}

// New creates a new API instance over repo. A nil clock means time.Now.
func New(repo sqlite.Repository, clock services.Clock) API {
	return &apiImpl{
		services: services.NewServiceContainer(repo, clock),
	}
}

func (a *apiImpl) AddTask(ctx context.Context, name, date string) (*domain.Task, error) {
	return a.services.TaskService.CreateTask(ctx, name, date)
}

func (a *apiImpl) GetTask(ctx context.Context, position int) (*domain.Task, error) {
	return a.services.TaskService.GetTask(ctx, position)
}

func (a *apiImpl) CheckTask(ctx context.Context, position int) error {
	return a.services.TaskService.SetDone(ctx, position, true)
}

func (a *apiImpl) UncheckTask(ctx context.Context, position int) error {
	return a.services.TaskService.SetDone(ctx, position, false)
}

func (a *apiImpl) RenameTask(ctx context.Context, position int, name string) error {
	return a.services.TaskService.RenameTask(ctx, position, name)
}

func (a *apiImpl) DeleteTask(ctx context.Context, position int) error {
	return a.services.TaskService.DeleteTask(ctx, position)
}

// ListLines renders every task as one listing line.
func (a *apiImpl) ListLines(ctx context.Context, signs config.Signs, color bool) iter.Seq2[string, error] {
	return a.services.TaskService.RenderTasks(ctx, services.NewLineRenderer(signs, color))
}

func (a *apiImpl) Report(ctx context.Context) (*services.Report, error) {
	return a.services.ReportingService.Report(ctx)
}
