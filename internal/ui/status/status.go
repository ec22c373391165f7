// Package status prints the user-facing progress lines of a run.
package status

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/apkfetch/internal/ui/output"
	"go.trai.ch/apkfetch/internal/ui/style"
)

// Printer writes status lines to an output, colored by kind.
// Colors are dropped when NO_COLOR is set.
type Printer struct {
	out *termenv.Output
}

// New creates a Printer writing to w. A nil w means os.Stdout.
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{out: output.New(w, output.Status)}
}

// Info prints a neutral line.
func (p *Printer) Info(msg string) {
	p.print(msg, style.Slate)
}

// Notice prints a line for a run that ended without work to do.
func (p *Printer) Notice(msg string) {
	p.print(msg, style.Yellow)
}

// Failure prints a line describing a failed step.
func (p *Printer) Failure(msg string) {
	p.print(msg, style.Red)
}

// Success prints a line prefixed with a check mark.
func (p *Printer) Success(msg string) {
	p.print(style.Check+" "+msg, style.Green)
}

func (p *Printer) print(msg string, color lipgloss.Color) {
	styled := p.out.String(msg).Foreground(termenv.RGBColor(string(color)))
	_, _ = p.out.WriteString(styled.String() + "\n")
}
