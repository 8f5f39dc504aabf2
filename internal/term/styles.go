package term

import "github.com/charmbracelet/lipgloss"

// Color palette: named constants for the ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorGreen is used for success lines.
	ColorGreen = lipgloss.Color("82")

	// ColorRed is used for error lines.
	ColorRed = lipgloss.Color("196")

	// ColorYellow is used for warning lines.
	ColorYellow = lipgloss.Color("220")

	// ColorCyan is used for informational lines.
	ColorCyan = lipgloss.Color("14")

	// ColorDimGray is used for secondary detail.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles mapping presenter line kinds to visual presentation.
var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleError   = lipgloss.NewStyle().Foreground(ColorRed)
	StyleWarn    = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles secondary detail (build metadata, hints).
	StyleDim = lipgloss.NewStyle().Foreground(ColorDimGray)
)
