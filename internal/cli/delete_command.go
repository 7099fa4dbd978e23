package cli

import (
	"context"
	"fmt"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute deletes the task at the position in args[0]. Tasks after it move up.
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	position, err := parsePosition(args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.app.api.DeleteTask(ctx, position); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	fmt.Fprintln(c.app.out, "Task deleted successfully.")
	return nil
}
