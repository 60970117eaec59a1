package tui

import "github.com/charmbracelet/lipgloss"

const indent = "  "

var (
	botTextStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	botPromptStyle    = botTextStyle.Bold(true)
	cardTitleStyle    = botTextStyle.Bold(true).Underline(true)
	cardSubtitleStyle = botTextStyle.Bold(true)
	actionValueStyle  = botTextStyle.Reverse(true)
	userPromptStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	errorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)
