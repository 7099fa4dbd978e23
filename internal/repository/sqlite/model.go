package sqlite

// Task is a row of the tasks table. Done is stored as 0/1.
type Task struct {
	ID   int64  `db:"id"`
	Name string `db:"task_name"`
	Date string `db:"task_date"`
	Done bool   `db:"task_done"`
}
