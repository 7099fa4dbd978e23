package cli

import (
	"io"
	"os"
	"strconv"
	"strings"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/internal/errors"
)

// App carries what every command handler needs
type App struct {
	api    api.API
	config *config.Config
	out    io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(api api.API, cfg *config.Config, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if out == nil {
		out = os.Stdout
	}
	return &App{
		api:    api,
		config: cfg,
		out:    out,
	}
}

// parsePosition reads an integer task position from a command argument.
// The range is checked by the task service.
func parsePosition(arg string) (int, error) {
	position, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, errors.NewInvalidInputError("position", arg, "must be a positive integer")
	}
	return position, nil
}

// joinName rebuilds a task name that the shell split into several arguments
func joinName(args []string) string {
	return strings.Join(args, " ")
}
