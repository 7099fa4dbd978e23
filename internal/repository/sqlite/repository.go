package sqlite

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	apperrors "task-tracker/internal/errors"
	"task-tracker/internal/logging"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	task_name TEXT,
	task_date TEXT,
	task_done INTEGER
)`

const selectTasks = `
	SELECT id,
		COALESCE(task_name, '') AS task_name,
		COALESCE(task_date, '') AS task_date,
		COALESCE(task_done, 0) AS task_done
	FROM tasks`

// atPosition selects the id of the row at a 0-based offset in id order.
const atPosition = `SELECT id FROM tasks ORDER BY id ASC LIMIT 1 OFFSET ?`

// Repository defines the interface for database operations.
// Every task is addressed by its 1-based position in ascending id order.
// Callers must pass positions of at least 1: SQLite treats a negative OFFSET
// as zero, which would target the first task.
type Repository interface {
	// Create operations
	CreateTask(ctx context.Context, task *Task) error

	// Read operations
	GetTaskAt(ctx context.Context, position int) (*Task, error)
	IterateTasks(ctx context.Context) iter.Seq2[*Task, error]

	// Update operations
	SetTaskDoneAt(ctx context.Context, position int, done bool) (int64, error)
	RenameTaskAt(ctx context.Context, position int, name string) (int64, error)

	// Delete operations
	DeleteTaskAt(ctx context.Context, position int) (int64, error)

	// Utility
	Close() error
}

// Options tunes statement deadlines and directory creation.
type Options struct {
	QueryTimeout   time.Duration
	WriteTimeout   time.Duration
	DirPermissions uint32
}

// DefaultOptions returns the options used by New.
func DefaultOptions() Options {
	return Options{
		QueryTimeout:   10 * time.Second,
		WriteTimeout:   5 * time.Second,
		DirPermissions: 0755,
	}
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db   *sqlx.DB
	opts Options
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithConfig(dbPath, DefaultOptions())
}

// NewWithConfig opens or creates the database file at dbPath and makes sure
// the tasks table exists.
func NewWithConfig(dbPath string, opts Options) (*SQLiteRepository, error) {
	if dbPath == "" {
		return nil, apperrors.NewInvalidInputError("database path", dbPath, "cannot be empty")
	}

	if !isMemory(dbPath) {
		perms := os.FileMode(opts.DirPermissions)
		if perms == 0 {
			perms = 0755
		}
		if err := os.MkdirAll(filepath.Dir(dbPath), perms); err != nil {
			return nil, apperrors.NewStorageError("create database directory", err)
		}
	}

	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, apperrors.NewStorageError("open database", err)
	}
	// One connection keeps ":memory:" databases alive and writes serialized.
	db.SetMaxOpenConns(1)

	repo := &SQLiteRepository{db: db, opts: opts}
	if err := repo.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}

	logging.Debug("opened task store", "path", dbPath)
	return repo, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *SQLiteRepository) ensureSchema() error {
	ctx, cancel := r.writeContext(context.Background())
	defer cancel()

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return HandleStorageError(ctx, "create tasks table", err)
	}
	return nil
}

// CreateTask inserts a new task and records its row id
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `INSERT INTO tasks (task_name, task_date, task_done) VALUES (?, ?, ?)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, "insert task", query, task.Name, task.Date, boolToInt(task.Done))
	if err != nil {
		return err
	}

	task.ID = id
	logging.Debug("inserted task", "id", id, "name", task.Name)
	return nil
}

// GetTaskAt retrieves the task at a position, or nil if there is none
func (r *SQLiteRepository) GetTaskAt(ctx context.Context, position int) (*Task, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := selectTasks + ` ORDER BY id ASC LIMIT 1 OFFSET ?`
	return QuerySingle[Task](ctx, r.db, "get task", query, position-1)
}

// IterateTasks streams tasks in ascending id order. Each call runs a fresh
// query; the cursor is closed when iteration ends or the caller stops early.
// A read error is yielded once and ends the sequence.
func (r *SQLiteRepository) IterateTasks(ctx context.Context) iter.Seq2[*Task, error] {
	return func(yield func(*Task, error) bool) {
		ctx, cancel := r.queryContext(ctx)
		defer cancel()

		rows, err := r.db.QueryxContext(ctx, selectTasks+` ORDER BY id ASC`)
		if err != nil {
			yield(nil, HandleStorageError(ctx, "query tasks", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			task := &Task{}
			if err := rows.StructScan(task); err != nil {
				yield(nil, HandleStorageError(ctx, "scan task", err))
				return
			}
			if !yield(task, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, HandleStorageError(ctx, "iterate tasks", err))
		}
	}
}

// SetTaskDoneAt sets the done flag of the task at a position
func (r *SQLiteRepository) SetTaskDoneAt(ctx context.Context, position int, done bool) (int64, error) {
	query := `UPDATE tasks SET task_done = ? WHERE id IN (` + atPosition + `)`
	return r.execAt(ctx, "update task status", position, query, boolToInt(done), position-1)
}

// RenameTaskAt updates the name of the task at a position
func (r *SQLiteRepository) RenameTaskAt(ctx context.Context, position int, name string) (int64, error) {
	query := `UPDATE tasks SET task_name = ? WHERE id IN (` + atPosition + `)`
	return r.execAt(ctx, "rename task", position, query, name, position-1)
}

// DeleteTaskAt deletes the task at a position. Later positions shift down by one.
func (r *SQLiteRepository) DeleteTaskAt(ctx context.Context, position int) (int64, error) {
	query := `DELETE FROM tasks WHERE id IN (` + atPosition + `)`
	return r.execAt(ctx, "delete task", position, query, position-1)
}

func (r *SQLiteRepository) execAt(ctx context.Context, operation string, position int, query string, args ...interface{}) (int64, error) {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	rows, err := ExecuteWithRowsAffected(ctx, r.db, operation, query, args...)
	if err != nil {
		return 0, err
	}

	logging.Debug(operation, "position", position, "rows", rows)
	return rows, nil
}

func (r *SQLiteRepository) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return withTimeout(ctx, r.opts.QueryTimeout)
}

func (r *SQLiteRepository) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return withTimeout(ctx, r.opts.WriteTimeout)
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func isMemory(dbPath string) bool {
	return dbPath == ":memory:" || strings.HasPrefix(dbPath, "file:")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
