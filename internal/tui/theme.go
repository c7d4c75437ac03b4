package tui

import "github.com/charmbracelet/lipgloss"

// Palette lifted from the app's pink-and-white look.
const (
	colorAccent = lipgloss.Color("#E75480")
	colorBorder = lipgloss.Color("#F8C8DC")
	colorDeep   = lipgloss.Color("#B83227")
	colorMuted  = lipgloss.Color("#666666")
	colorInk    = lipgloss.Color("#111111")
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	FilterActive   lipgloss.Style
	FilterInactive lipgloss.Style

	CourseHeader lipgloss.Style
	CountBadge   lipgloss.Style

	ItemName lipgloss.Style
	ItemDesc lipgloss.Style
	Price    lipgloss.Style
	Cursor   lipgloss.Style

	Label    lipgloss.Style
	Disabled lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Badge    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder),

		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(colorDeep).Underline(true),
		TabInactive: lipgloss.NewStyle().Foreground(colorMuted),

		FilterActive:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Underline(true),
		FilterInactive: lipgloss.NewStyle().Foreground(colorMuted),

		CourseHeader: lipgloss.NewStyle().Bold(true).Foreground(colorInk),
		CountBadge:   lipgloss.NewStyle().Foreground(colorAccent),

		ItemName: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		ItemDesc: lipgloss.NewStyle().Foreground(colorMuted),
		Price:    lipgloss.NewStyle().Bold(true).Foreground(colorInk),
		Cursor:   lipgloss.NewStyle().Bold(true).Foreground(colorDeep),

		Label:    lipgloss.NewStyle().Bold(true),
		Disabled: lipgloss.NewStyle().Faint(true),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(colorDeep),
		Success:  lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorAccent).
			Padding(0, 1),
	}
}
