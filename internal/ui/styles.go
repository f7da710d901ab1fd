package ui

import "github.com/charmbracelet/lipgloss"

// Retro green palette.
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	border      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	goldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	buttonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

const rule = "----------------------------------------"
