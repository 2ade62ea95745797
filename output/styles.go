// Package output provides styling helpers for terminal output.
package output

import (
	"io"

	"github.com/muesli/termenv"
)

// Styles provides styled output helpers for the CLI. Styling degrades to plain
// text when the writer is not a color-capable terminal.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a new Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w),
	}
}

func (s *Styles) color(text, color string) termenv.Style {
	return s.output.String(text).Foreground(s.output.Color(color))
}

// Success returns a styled success string (green + bold).
func (s *Styles) Success(text string) string {
	return s.color(text, "2").Bold().String()
}

// Error returns a styled error string (red + bold).
func (s *Styles) Error(text string) string {
	return s.color(text, "1").Bold().String()
}

// Warning returns a styled warning (yellow + bold).
func (s *Styles) Warning(text string) string {
	return s.color(text, "3").Bold().String()
}

// FilePath returns a styled file path or position (cyan).
func (s *Styles) FilePath(text string) string {
	return s.color(text, "6").String()
}

// Account returns a styled account name (yellow).
func (s *Styles) Account(text string) string {
	return s.color(text, "3").String()
}

// Tag returns a styled tag (blue).
func (s *Styles) Tag(text string) string {
	return s.color(text, "4").String()
}

// Party returns a styled party name (magenta + bold).
func (s *Styles) Party(text string) string {
	return s.color(text, "5").Bold().String()
}

// Keyword returns a styled keyword (bold).
func (s *Styles) Keyword(text string) string {
	return s.output.String(text).Bold().String()
}

// Dim returns dimmed text (for secondary information).
func (s *Styles) Dim(text string) string {
	return s.output.String(text).Faint().String()
}

// Timing returns a styled duration: red when the operation was slow, dimmed
// otherwise.
func (s *Styles) Timing(text string, slow bool) string {
	if slow {
		return s.color(text, "1").String()
	}
	return s.Dim(text)
}
