package cli

import (
	"context"
	"fmt"
)

// CheckCommand handles the check and uncheck commands
type CheckCommand struct {
	app          *App
	done         bool
	errorHandler *ErrorHandler
}

// NewCheckCommand creates a handler that marks a task done
func NewCheckCommand(app *App) *CheckCommand {
	return &CheckCommand{app: app, done: true, errorHandler: NewErrorHandler()}
}

// NewUncheckCommand creates a handler that marks a task not done
func NewUncheckCommand(app *App) *CheckCommand {
	return &CheckCommand{app: app, done: false, errorHandler: NewErrorHandler()}
}

// Execute sets the done flag of the task at the position in args[0]
func (c *CheckCommand) Execute(ctx context.Context, args []string) error {
	position, err := parsePosition(args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if c.done {
		err = c.app.api.CheckTask(ctx, position)
	} else {
		err = c.app.api.UncheckTask(ctx, position)
	}
	if err != nil {
		return c.errorHandler.Handle("update task", err)
	}

	fmt.Fprintln(c.app.out, "Done.")
	return nil
}
