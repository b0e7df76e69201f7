package render

import "github.com/charmbracelet/lipgloss"

// Palette for trace verdicts.
var (
	Green  = lipgloss.Color("#2E7D32")
	Red    = lipgloss.Color("#C62828")
	Blue   = lipgloss.Color("#1565C0")
	Orange = lipgloss.Color("#EF6C00")
	Muted  = lipgloss.Color("#6B7280")
)

// Styles holds one style per kind of output line.
type Styles struct {
	OK       lipgloss.Style
	Missing  lipgloss.Style
	Checking lipgloss.Style
	Success  lipgloss.Style
	Fail     lipgloss.Style
	Cycle    lipgloss.Style
	Heading  lipgloss.Style
	Advisory lipgloss.Style
}

// Plain returns styles that leave text untouched.
func Plain() Styles {
	s := lipgloss.NewStyle()
	return Styles{
		OK:       s,
		Missing:  s,
		Checking: s,
		Success:  s,
		Fail:     s,
		Cycle:    s,
		Heading:  s,
		Advisory: s,
	}
}

// Colored returns the terminal color scheme. lipgloss drops the colors
// itself when the output is not a terminal.
func Colored() Styles {
	return Styles{
		OK:       lipgloss.NewStyle().Foreground(Green),
		Missing:  lipgloss.NewStyle().Foreground(Red),
		Checking: lipgloss.NewStyle(),
		Success:  lipgloss.NewStyle().Foreground(Blue),
		Fail:     lipgloss.NewStyle().Foreground(Orange),
		Cycle:    lipgloss.NewStyle().Foreground(Orange).Italic(true),
		Heading:  lipgloss.NewStyle().Bold(true),
		Advisory: lipgloss.NewStyle().Foreground(Muted),
	}
}
