package cli

import (
	"context"
	"fmt"
)

// RenameCommand handles the rename command
type RenameCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewRenameCommand creates a new rename command handler
func NewRenameCommand(app *App) *RenameCommand {
	return &RenameCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute renames the task at args[0] to the remaining words
func (c *RenameCommand) Execute(ctx context.Context, args []string) error {
	position, err := parsePosition(args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	name := joinName(args[1:])
	if err := c.app.api.RenameTask(ctx, position, name); err != nil {
		return c.errorHandler.Handle("rename task", err)
	}

	fmt.Fprintf(c.app.out, "Task with id: %d renamed to: %s\n", position, name)
	return nil
}
