package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/xonecas/delta/internal/theme"
)

// styles holds every lipgloss style the view uses, derived from one palette.
type styles struct {
	Text       lipgloss.Style
	Gutter     lipgloss.Style
	GutterCur  lipgloss.Style
	Footer     lipgloss.Style
	FooterName lipgloss.Style
	Title      lipgloss.Style
	Status     lipgloss.Style
	Error      lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	bg := lipgloss.Color(p.Bg)
	footerBg := lipgloss.Color(p.FooterBg)
	return styles{
		Text:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.Fg)).Background(bg),
		Gutter:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.Gutter)).Background(bg),
		GutterCur:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Background(bg),
		Footer:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)).Background(footerBg),
		FooterName: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Fg)).Background(footerBg).Bold(true),
		Title:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Background(footerBg).Bold(true),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.Fg)).Background(footerBg),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error)).Background(footerBg).Bold(true),
	}
}
