package wizard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/sakurazen/soxgui/internal/model"
)

// Theme defines the color palette for terminal output
type Theme struct {
	TextPrimary lipgloss.Color
	TextDim     lipgloss.Color
	Border      lipgloss.Color

	Accent  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// DefaultTheme is a dark palette that stays readable on light terminals
var DefaultTheme = Theme{
	TextPrimary: lipgloss.Color("#c0caf5"),
	TextDim:     lipgloss.Color("#565f89"),
	Border:      lipgloss.Color("#414868"),

	Accent:  lipgloss.Color("#7aa2f7"),
	Success: lipgloss.Color("#9ece6a"),
	Warning: lipgloss.Color("#e0af68"),
	Error:   lipgloss.Color("#f7768e"),
}

// Styles groups the lipgloss styles built from a theme
type Styles struct {
	Title   lipgloss.Style
	Command lipgloss.Style
	Item    lipgloss.Style
	Dim     lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Box     lipgloss.Style
}

// NewStyles builds the styles for a theme
func NewStyles(t Theme) Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Command: lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true),
		Item:    lipgloss.NewStyle().Foreground(t.TextPrimary),
		Dim:     lipgloss.NewStyle().Foreground(t.TextDim),
		Success: lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
	}
}

// DefaultStyles are used by the command line tool
var DefaultStyles = NewStyles(DefaultTheme)

// RenderCommand frames a command line
func RenderCommand(line string) string {
	return DefaultStyles.Box.Render(DefaultStyles.Command.Render(line))
}

// RenderList renders a titled list, several names per row
func RenderList(title string, items []string, perRow int) string {
	if perRow < 1 {
		perRow = 1
	}
	width := 0
	for _, item := range items {
		if w := lipgloss.Width(item); w > width {
			width = w
		}
	}

	var rows []string
	for i := 0; i < len(items); i += perRow {
		end := i + perRow
		if end > len(items) {
			end = len(items)
		}
		cells := make([]string, 0, end-i)
		for _, item := range items[i:end] {
			cells = append(cells, DefaultStyles.Item.Width(width+2).Render(item))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		DefaultStyles.Title.Render(title),
		strings.Join(rows, "\n"),
	)
}

// RenderRun renders the status line and message of a finished run
func RenderRun(run *model.SoxRun) string {
	var status string
	switch run.Status {
	case model.RunStatusCompleted:
		status = DefaultStyles.Success.Render(run.Status.String())
	case model.RunStatusTimedOut:
		status = DefaultStyles.Warning.Render(run.Status.String())
	default:
		status = DefaultStyles.Error.Render(run.Status.String())
	}

	header := fmt.Sprintf("%s %s", status,
		DefaultStyles.Dim.Render(fmt.Sprintf("exit=%d %s", run.ExitCode, run.Duration().Round(time.Millisecond))))
	msg := strings.TrimRight(run.Message, "\n")
	if msg == "" {
		return header
	}
	return header + "\n" + msg
}

// RenderError renders an error for stderr
func RenderError(err error) string {
	return DefaultStyles.Error.Render("error: ") + err.Error()
}
