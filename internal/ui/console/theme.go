package console

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Note    lipgloss.Style
	Title   lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Note:    lipgloss.NewStyle().Faint(true),
		Title:   lipgloss.NewStyle().Bold(true),
	}
}

// PlainTheme renders text unchanged.
func PlainTheme() Theme {
	s := lipgloss.NewStyle()
	return Theme{Success: s, Error: s, Warning: s, Note: s, Title: s}
}
