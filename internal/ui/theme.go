package ui

import "github.com/charmbracelet/lipgloss"

const (
	colorPrimary     = "#8B5CF6"
	colorAccent      = "#EC4899"
	colorPurpleLight = "#A78BFA"
	colorGrayDark    = "#1F2937"
	colorGrayLight   = "#F3F4F6"
	colorDanger      = "#EF4444"
	colorWarn        = "#F59E0B"
)

// theme is the style set for one color scheme. Toggling dark mode swaps
// the whole set.
type theme struct {
	dark bool

	title     lipgloss.Style
	text      lipgloss.Style
	subtle    lipgloss.Style
	done      lipgloss.Style
	selected  lipgloss.Style
	overdue   lipgloss.Style
	filterOn  lipgloss.Style
	filterOff lipgloss.Style
	card      lipgloss.Style
	status    lipgloss.Style
	warn      lipgloss.Style
}

func themeFor(dark bool) theme {
	text, subtle, surface := colorGrayDark, "#6B7280", colorGrayLight
	if dark {
		text, subtle, surface = colorGrayLight, "#9CA3AF", "#374151"
	}
	return theme{
		dark:      dark,
		title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorPrimary)),
		text:      lipgloss.NewStyle().Foreground(lipgloss.Color(text)),
		subtle:    lipgloss.NewStyle().Foreground(lipgloss.Color(subtle)),
		done:      lipgloss.NewStyle().Foreground(lipgloss.Color(subtle)).Strikethrough(true),
		selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent)),
		overdue:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorDanger)),
		filterOn:  lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color(colorGrayLight)).Background(lipgloss.Color(colorPrimary)),
		filterOff: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color(subtle)),
		card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(colorPurpleLight)).Padding(0, 1),
		status:    lipgloss.NewStyle().Foreground(lipgloss.Color(subtle)).Background(lipgloss.Color(surface)),
		warn:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorWarn)),
	}
}

func (t theme) name() string {
	if t.dark {
		return "dark"
	}
	return "light"
}
