// Package output renders command results as styled text, tables, JSON or
// YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Mode selects the output format.
type Mode string

// Output modes.
const (
	ModeAuto  Mode = "auto"
	ModeText  Mode = "text"
	ModeTable Mode = "table"
	ModeJSON  Mode = "json"
	ModeYAML  Mode = "yaml"
	ModeSexpr Mode = "sexpr"
)

// Renderer writes results to the command's output streams.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	color  bool
	styles *Styles
}

// NewRenderer creates a renderer. color is auto, always or never; auto
// enables color when out is a terminal and NO_COLOR is unset.
func NewRenderer(out, errOut io.Writer, mode Mode, color string) *Renderer {
	r := &Renderer{out: out, errOut: errOut, mode: mode}
	switch color {
	case "always":
		r.color = true
	case "never":
		r.color = false
	default:
		r.color = isTerminal(out) && os.Getenv("NO_COLOR") == ""
	}

	lr := lipgloss.NewRenderer(out)
	if r.color {
		lr.SetColorProfile(termenv.ANSI256)
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}
	r.styles = newStyles(lr)
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// EffectiveMode resolves ModeAuto to ModeText.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode == "" || r.mode == ModeAuto {
		return ModeText
	}
	return r.mode
}

// Color reports whether styled output is enabled.
func (r *Renderer) Color() bool {
	return r.color
}

// Styles returns the style set.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Writer returns the standard output writer.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// ErrWriter returns the error output writer.
func (r *Renderer) ErrWriter() io.Writer {
	return r.errOut
}

// Println writes a line to standard output.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted text to standard output.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Encode writes v as YAML in ModeYAML and as indented JSON otherwise.
func (r *Renderer) Encode(v any) error {
	if r.EffectiveMode() == ModeYAML {
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// structured reports whether the mode is a data format.
func (r *Renderer) structured() bool {
	m := r.EffectiveMode()
	return m == ModeJSON || m == ModeYAML
}
