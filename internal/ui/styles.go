package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/frametile/frametile/internal/config"
)

// Styles holds the lipgloss styles derived from the configured theme.
type Styles struct {
	Background   lipgloss.Style
	Border       lipgloss.Style
	ActiveBorder lipgloss.Style
	Label        lipgloss.Style
	Status       lipgloss.Style
	Mode         lipgloss.Style
}

func NewStyles(theme config.Theme) Styles {
	bg := lipgloss.Color(theme.Background)
	return Styles{
		Background:   lipgloss.NewStyle().Background(bg),
		Border:       lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(theme.Border)),
		ActiveBorder: lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(theme.ActiveBorder)).Bold(true),
		Label:        lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(theme.ActiveBorder)),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Mode:         lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ActiveBorder)).Bold(true),
	}
}

func (s Styles) forKind(kind cellKind) lipgloss.Style {
	switch kind {
	case cellBorder:
		return s.Border
	case cellActiveBorder:
		return s.ActiveBorder
	case cellLabel:
		return s.Label
	default:
		return s.Background
	}
}
