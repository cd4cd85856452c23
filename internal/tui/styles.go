package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	sectionTitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	labelStyle        = lipgloss.NewStyle().Foreground(colorSubtext1)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	requiredStyle     = lipgloss.NewStyle().Foreground(colorError)
	placeholderStyle  = lipgloss.NewStyle().Foreground(colorOverlay1)
	valueStyle        = lipgloss.NewStyle().Foreground(colorText)
	errorTextStyle    = lipgloss.NewStyle().Foreground(colorError)
	cursorStyle       = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	stepActiveStyle = lipgloss.NewStyle().
			Foreground(colorMantle).
			Background(colorAccent).
			Bold(true).
			Padding(0, 1)

	stepIdleStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	barFilledStyle = lipgloss.NewStyle().Foreground(colorAccent)
	barEmptyStyle  = lipgloss.NewStyle().Foreground(colorSurface1)

	chipStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Background(colorSurface0).
			Padding(0, 1)

	chipCursorStyle = chipStyle.
			Foreground(colorMantle).
			Background(colorLavender)

	bannerStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0).
			Padding(0, 1)

	// Status bar (above footer)
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorInfo).
			Background(colorSurface0).
			Padding(0, 2)

	statusErrStyle = statusBarStyle.Foreground(colorWarning)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorPeach).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface2).
			Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	pickerRowCursorStyle = lipgloss.NewStyle().Background(colorSurface1).Bold(true)
	pickerMetaStyle      = lipgloss.NewStyle().Foreground(colorOverlay0)
)
