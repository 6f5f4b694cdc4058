package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, help box border
	ColorHighlight = "205" // Magenta - selected items, indicator
	ColorDanger    = "196" // Red - errors
	ColorMuted     = "241" // Gray - hints, inactive tabs
	ColorText      = "252" // Light gray - body text
)

// Styles contains shared style definitions.
var Styles = struct {
	Title    lipgloss.Style // app title line
	Tab      lipgloss.Style // inactive strip item
	TabOn    lipgloss.Style // active strip item
	Body     lipgloss.Style // section body text
	Heading  lipgloss.Style // section heading inside the body
	Hint     lipgloss.Style // footer hints
	Status   lipgloss.Style // footer status (current config)
	Error    lipgloss.Style
	HelpBox  lipgloss.Style // leader help and full help frame
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	TabOn: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Body: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Heading: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	HelpBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	HelpKey: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	HelpDesc: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
