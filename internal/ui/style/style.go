// Package style provides the colors and icons shared by log and report output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Iris   = lipgloss.Color("#8B5CF6")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
)

// Status renders an icon for a command outcome in its color.
func Status(icon string, color lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(color).Render(icon)
}
