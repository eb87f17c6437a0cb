package tui

// Color constants for the tabletop TUI theme
const (
	// Base Colors
	ColorBorder = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (menu items, user input, titles)
	ColorSecondaryText = "#B1B8C7" // Secondary text - subtle purple-tinted grey
	ColorDisabledText  = "#6D7383" // Disabled/muted text
	ColorPlaceholder   = "#B1B8C7" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (green felt theme)
	ColorAccentMain   = "#15803D" // Logo, accent elements, active borders
	ColorAccentBright = "#4ADE80" // Highlights, selected menu item

	// State Colors
	ColorError   = "#EF4444" // Query errors
	ColorWarning = "#F59E0B" // Ignored date input
)
