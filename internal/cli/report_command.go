package cli

import (
	"context"
	"fmt"

	"task-tracker/internal/services"
)

// ReportCommand handles the report command
type ReportCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewReportCommand creates a new report command handler
func NewReportCommand(app *App) *ReportCommand {
	return &ReportCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute prints the completion and lateness summary
func (c *ReportCommand) Execute(ctx context.Context) error {
	report, err := c.app.api.Report(ctx)
	if err != nil {
		return c.errorHandler.Handle("build report", err)
	}

	fmt.Fprint(c.app.out, services.FormatReport(report))
	return nil
}
