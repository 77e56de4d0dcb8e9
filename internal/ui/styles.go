package ui

import "github.com/charmbracelet/lipgloss"

var (
	PrimaryColor = lipgloss.Color("#7D56F4")
	FillColor    = lipgloss.Color("#F5C542")
	SubtleColor  = lipgloss.Color("#626262")
	ErrorColor   = lipgloss.Color("#FF0000")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	BarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor)

	FillStyle = lipgloss.NewStyle().Foreground(FillColor)

	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			PaddingLeft(2)

	ErrorStyle = lipgloss.NewStyle().Foreground(ErrorColor)

	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			MarginTop(1)
)
