package cli

import (
	"context"
	"fmt"
)

// ListCommand handles the ls command
type ListCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute prints one line per task. Lines are written as they are read, so a
// storage error leaves the earlier lines in place.
func (c *ListCommand) Execute(ctx context.Context) error {
	display := c.app.config.Display
	printed := 0

	for line, err := range c.app.api.ListLines(ctx, c.app.config.GetSigns(), display.Color) {
		if err != nil {
			return c.errorHandler.Handle("list tasks", err)
		}
		fmt.Fprintln(c.app.out, line)
		printed++
	}

	if printed == 0 {
		fmt.Fprintln(c.app.out, "No tasks found.")
	}
	return nil
}
