package main

import "github.com/charmbracelet/lipgloss"

const (
	colorSubtle    = lipgloss.Color("240")
	colorHighlight = lipgloss.Color("81")
	colorError     = lipgloss.Color("196")
	colorWhite     = lipgloss.Color("231")
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)

	historyStyle = lipgloss.NewStyle().
			Foreground(colorSubtle).
			Align(lipgloss.Right)

	displayStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true).
			Align(lipgloss.Right)

	operatorStyle = lipgloss.NewStyle().Foreground(colorHighlight)

	advisoryStyle = lipgloss.NewStyle().Foreground(colorError)
)
