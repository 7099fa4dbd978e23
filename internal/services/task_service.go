package services

import (
	"context"
	"iter"
	"time"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository/sqlite"
	"task-tracker/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	clock         Clock
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo sqlite.Repository, clock Clock) TaskService {
	if clock == nil {
		clock = time.Now
	}
	return &taskServiceImpl{
		repo:          repo,
		clock:         clock,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
	}
}

// CreateTask validates the name and date and inserts a not-done task.
// Nothing is written when validation fails.
func (t *taskServiceImpl) CreateTask(ctx context.Context, name, date string) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskName(name); err != nil {
		return nil, errors.NewValidationError("no name was provided", err)
	}
	if err := t.taskValidator.ValidateDate(date); err != nil {
		return nil, errors.NewInvalidDateError(date, err)
	}

	task := domain.NewTask(name, date)
	dbTask := t.mapper.Task.ToDatabase(task)
	if err := t.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	logging.Debug("created task", "name", name, "date", date)
	return &task, nil
}

// checkPosition rejects positions below 1 before they reach the store
func (t *taskServiceImpl) checkPosition(position int) error {
	if err := t.taskValidator.ValidatePosition(position); err != nil {
		appErr := errors.NewInvalidInputError("position", position, "must be a positive integer")
		appErr.Cause = err
		return appErr
	}
	return nil
}

// GetTask returns the task at position, or nil if there is none
func (t *taskServiceImpl) GetTask(ctx context.Context, position int) (*domain.Task, error) {
	if err := t.checkPosition(position); err != nil {
		return nil, err
	}
	dbTask, err := t.repo.GetTaskAt(ctx, position)
	if err != nil {
		return nil, err
	}
	if dbTask == nil {
		return nil, nil
	}

	task := t.mapper.Task.FromDatabase(*dbTask, position)
	return &task, nil
}

// RenameTask renames the task at position. A missing position is a no-op.
func (t *taskServiceImpl) RenameTask(ctx context.Context, position int, name string) error {
	if err := t.checkPosition(position); err != nil {
		return err
	}
	rows, err := t.repo.RenameTaskAt(ctx, position, name)
	if err != nil {
		return err
	}
	logging.Debug("renamed task", "position", position, "matched", rows)
	return nil
}

// SetDone sets the done flag of the task at position. A missing position is a no-op.
func (t *taskServiceImpl) SetDone(ctx context.Context, position int, done bool) error {
	if err := t.checkPosition(position); err != nil {
		return err
	}
	rows, err := t.repo.SetTaskDoneAt(ctx, position, done)
	if err != nil {
		return err
	}
	logging.Debug("set task done", "position", position, "done", done, "matched", rows)
	return nil
}

// DeleteTask removes the task at position; later tasks move up one place.
// A missing position is a no-op.
func (t *taskServiceImpl) DeleteTask(ctx context.Context, position int) error {
	if err := t.checkPosition(position); err != nil {
		return err
	}
	rows, err := t.repo.DeleteTaskAt(ctx, position)
	if err != nil {
		return err
	}
	logging.Debug("deleted task", "position", position, "matched", rows)
	return nil
}

// Tasks yields every task in creation order, numbered from 1.
func (t *taskServiceImpl) Tasks(ctx context.Context) iter.Seq2[domain.Task, error] {
	return func(yield func(domain.Task, error) bool) {
		position := 0
		for dbTask, err := range t.repo.IterateTasks(ctx) {
			if err != nil {
				yield(domain.Task{}, err)
				return
			}
			position++
			if !yield(t.mapper.Task.FromDatabase(*dbTask, position), nil) {
				return
			}
		}
	}
}

// ListTasks yields one plain rendered line per task.
func (t *taskServiceImpl) ListTasks(ctx context.Context, signs config.Signs) iter.Seq2[string, error] {
	return t.RenderTasks(ctx, NewLineRenderer(signs, false))
}

// RenderTasks yields one line per task using renderer. The clock is read
// once per pass so every line of a listing agrees on "now".
func (t *taskServiceImpl) RenderTasks(ctx context.Context, renderer *LineRenderer) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		now := t.clock()
		for task, err := range t.Tasks(ctx) {
			if err != nil {
				yield("", err)
				return
			}
			if !yield(renderer.Render(task, now), nil) {
				return
			}
		}
	}
}
