package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
)

// LineRenderer formats tasks as listing lines:
//
//	[<done|not done>] <position>. <name> (<date>) <warning>
//
// The date part is omitted when there is no date and the warning glyph is
// shown whenever the due date has passed, whether or not the task is done.
type LineRenderer struct {
	signs config.Signs
	color bool

	doneStyle    lipgloss.Style
	warningStyle lipgloss.Style
	dateStyle    lipgloss.Style
}

// NewLineRenderer creates a renderer for the given glyphs. With color set,
// the glyphs and date are styled with lipgloss.
func NewLineRenderer(signs config.Signs, color bool) *LineRenderer {
	return &LineRenderer{
		signs:        signs,
		color:        color,
		doneStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		warningStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		dateStyle:    lipgloss.NewStyle().Faint(true),
	}
}

// Render formats one task as of now.
func (lr *LineRenderer) Render(task domain.Task, now time.Time) string {
	sign := lr.signs.NotDone
	if task.Done {
		sign = lr.style(lr.doneStyle, lr.signs.Done)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %d. %s", sign, task.Position, task.Name)
	if task.HasDate() {
		fmt.Fprintf(&b, " %s", lr.style(lr.dateStyle, "("+task.Date+")"))
	}
	if task.IsLate(now) {
		fmt.Fprintf(&b, " %s", lr.style(lr.warningStyle, lr.signs.Warning))
	}
	return b.String()
}

func (lr *LineRenderer) style(s lipgloss.Style, text string) string {
	if !lr.color {
		return text
	}
	return s.Render(text)
}

// FormatReport renders a report as the multi-line summary printed by `td report`.
func FormatReport(r *Report) string {
	return fmt.Sprintf("Report:\n"+
		"  - Total tasks: %d\n"+
		"  - Tasks done: %d/%d (%.2f %%)\n"+
		"  - Late tasks: %d/%d (%.2f %%)\n",
		r.Total,
		r.Done, r.Total, r.DoneRatio()*100,
		r.Late, r.Pending, r.LateRatio()*100,
	)
}
