package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette, https://catppuccin.com/palette
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorInfo    = colorTeal
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	hintStyle        = lipgloss.NewStyle().Foreground(colorOverlay1)
	tabStyle         = lipgloss.NewStyle().Foreground(colorSubtext0).Padding(0, 1)
	activeTabStyle   = lipgloss.NewStyle().Foreground(colorBase).Background(colorMauve).Bold(true).Padding(0, 1)
	recentLabelStyle = lipgloss.NewStyle().Foreground(colorPeach)
	cellStyle        = lipgloss.NewStyle()
	cursorCellStyle  = lipgloss.NewStyle().Background(colorSurface1)
	idleCursorStyle  = lipgloss.NewStyle().Background(colorSurface0)
	copiedCellStyle  = lipgloss.NewStyle().Background(colorSuccess).Foreground(colorBase)
	emptyTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	emptyHintStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)
	suggestStyle     = lipgloss.NewStyle().Foreground(colorYellow)
	statusStyle      = lipgloss.NewStyle().Foreground(colorInfo)
	errorStyle       = lipgloss.NewStyle().Foreground(colorError)
	footerKeyStyle   = lipgloss.NewStyle().Foreground(colorFocus)
	footerDescStyle  = lipgloss.NewStyle().Foreground(colorOverlay0)
	scrollTrackStyle = lipgloss.NewStyle().Foreground(colorSurface1)
	scrollThumbStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	descriptionStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Italic(true)
)
