package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	phaseStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	blockStyle    = lipgloss.NewStyle().PaddingLeft(2)
)
