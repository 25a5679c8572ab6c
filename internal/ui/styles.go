package ui

import "github.com/charmbracelet/lipgloss"

// Amber HUD palette
var (
	ColorAmber        = lipgloss.Color("#FFB000")
	ColorAmberMid     = lipgloss.Color("#CC8C00")
	ColorAmberDim     = lipgloss.Color("#8F6200")
	ColorAmberDark    = lipgloss.Color("#4A3300")
	ColorBlack        = lipgloss.Color("#000000")
	ColorCritical     = lipgloss.Color("#FF3232")
	ColorWarning      = lipgloss.Color("#FFD000")
	ColorNominal      = lipgloss.Color("#33FF66")
	ColorStealth      = lipgloss.Color("#7A7AFF")
	ColorBorderBright = lipgloss.Color("#FFB000")
	ColorBorderNorm   = lipgloss.Color("#8F6200")
	ColorBarBg        = lipgloss.Color("#221800")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorAmber).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorAmberMid)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorAmberMid).
			Padding(0, 1)

	StyleModeNormal = lipgloss.NewStyle().
			Foreground(ColorNominal).
			Bold(true)

	StyleModeStealth = lipgloss.NewStyle().
				Foreground(ColorStealth).
				Bold(true)

	StyleModeStress = lipgloss.NewStyle().
			Foreground(ColorCritical).
			Bold(true).
			Blink(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderNorm)

	StylePanelAlert = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorCritical)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true).
			Padding(0, 1)

	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorAmberDim)

	StyleValue = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true)

	StyleRule = lipgloss.NewStyle().
			Foreground(ColorAmberDim)

	StyleInfo = lipgloss.NewStyle().
			Foreground(ColorAmberMid)

	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	StyleCritical = lipgloss.NewStyle().
			Foreground(ColorCritical).
			Bold(true)

	StyleNominal = lipgloss.NewStyle().
			Foreground(ColorNominal)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorAmberDark)

	StyleConfirm = lipgloss.NewStyle().
			Background(ColorCritical).
			Foreground(ColorBlack).
			Bold(true)
)
