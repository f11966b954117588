package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles used by the renderer.
type Styles struct {
	Header  lipgloss.Style
	Path    lipgloss.Style
	Count   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles builds the style set for r. With noColor every style renders
// plain text.
func NewStyles(r *lipgloss.Renderer, noColor bool) Styles {
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return Styles{
		Header:  r.NewStyle().Bold(true),
		Path:    r.NewStyle().Foreground(lipgloss.Color("12")),
		Count:   r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		Success: r.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}
