package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	primaryColor = lipgloss.Color("#7C3AED")
	successColor = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#94A3B8")
)

// Styles are the lipgloss styles for one output stream. Colors are dropped
// automatically when the stream is not a terminal.
type Styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Header  lipgloss.Style
}

// NewStyles builds styles bound to w's color profile.
func NewStyles(w io.Writer) *Styles {
	r := lipgloss.NewRenderer(w, termenv.WithColorCache(true))
	return &Styles{
		Title:   r.NewStyle().Foreground(primaryColor).Bold(true),
		Muted:   r.NewStyle().Foreground(mutedColor),
		Success: r.NewStyle().Foreground(successColor),
		Error:   r.NewStyle().Foreground(errorColor).Bold(true),
		Header:  r.NewStyle().Bold(true),
	}
}
