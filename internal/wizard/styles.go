package wizard

import "github.com/charmbracelet/lipgloss"

type styles struct {
	logo     lipgloss.Style
	crumb    lipgloss.Style
	crumbOn  lipgloss.Style
	title    lipgloss.Style
	body     lipgloss.Style
	selected lipgloss.Style
	subtle   lipgloss.Style
	accent   lipgloss.Style
	err      lipgloss.Style
	success  lipgloss.Style
	thinking lipgloss.Style
	footer   lipgloss.Style
	box      lipgloss.Style
}

func newStyles() styles {
	return styles{
		logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F2A65A")).
			Bold(true),

		crumb: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#777777")).
			Padding(0, 1),

		crumbOn: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F2A65A")).
			Bold(true).
			Padding(0, 1),

		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F2A65A")).
			Bold(true).
			Padding(0, 1),

		body: lipgloss.NewStyle().
			Padding(0, 1),

		selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00E6B8")).
			Bold(true),

		subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")),

		accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F2A65A")),

		err: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5C5C")).
			Bold(true),

		success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3DDC97")).
			Bold(true),

		thinking: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3DDC97")),

		footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#777777")).
			Faint(true),

		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#F2A65A")),
	}
}
