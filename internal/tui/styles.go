// Package tui implements the interactive savings calculator.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	ColorHeader    = lipgloss.Color("39")
	ColorBorder    = lipgloss.Color("240")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorHighlight = lipgloss.Color("212")
	ColorMuted     = lipgloss.Color("241")
	ColorOK        = lipgloss.Color("42")
	ColorWarning   = lipgloss.Color("214")
	ColorCritical  = lipgloss.Color("196")
	ColorEnergy    = lipgloss.Color("33")
	ColorCost      = lipgloss.Color("34")
	ColorImpact    = lipgloss.Color("36")
)

// Icons.
const (
	IconFocus   = "→"
	IconEdit    = ">"
	IconCursor  = "▌"
	IconLeaf    = "🌳"
	IconWarning = "⚠"
)

// Shared styles.
//
//nolint:gochecknoglobals // Immutable lipgloss styles reused by every view.
var (
	HeaderStyle   = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle    = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	FocusStyle    = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	SubtleStyle   = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	OKStyle       = lipgloss.NewStyle().Foreground(ColorOK).Bold(true)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	CriticalStyle = lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)
	BoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorBorder).Padding(0, 1)
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader).Border(lipgloss.NormalBorder()).BorderForeground(ColorBorder).Padding(0, 1)
)
