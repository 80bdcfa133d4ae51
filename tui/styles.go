package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	urlStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	resultStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dialogStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	focusedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	disabledStyle = lipgloss.NewStyle().Faint(true)
)
