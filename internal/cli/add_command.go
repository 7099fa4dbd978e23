package cli

import (
	"context"
	"fmt"
)

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute creates a task from the name words in args and an optional due date.
// The command's Args check guarantees at least one word.
func (c *AddCommand) Execute(ctx context.Context, args []string, date string) error {
	task, err := c.app.api.AddTask(ctx, joinName(args), date)
	if err != nil {
		return c.errorHandler.Handle("create task", err)
	}

	fmt.Fprintf(c.app.out, "Task '%s' was created.\n", task.Name)
	return nil
}
