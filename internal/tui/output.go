package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Output writes styled diagnostics to a single writer
type Output struct {
	writer io.Writer
	styles *Styles
}

// NewOutput creates an output handler for w (os.Stderr when nil).
// Colors are only emitted when w is a terminal that supports them.
func NewOutput(w io.Writer) *Output {
	if w == nil {
		w = os.Stderr
	}
	return &Output{
		writer: w,
		styles: NewStyles(lipgloss.NewRenderer(w), DefaultTheme()),
	}
}

// Error prints an error message
func (o *Output) Error(message string) {
	fmt.Fprintln(o.writer, o.styles.ErrorMessage(message))
}

// Warning prints a warning message
func (o *Output) Warning(message string) {
	fmt.Fprintln(o.writer, o.styles.WarningMessage(message))
}
