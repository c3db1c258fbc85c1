package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dd0wney/cluso-routefinder/pkg/query"
	"github.com/muesli/termenv"
)

var (
	prefixColor  = lipgloss.Color("#00FFFF")
	valueColor   = lipgloss.Color("#00FF00")
	noRouteColor = lipgloss.Color("#FFFF00")
	errorColor   = lipgloss.Color("#FF5F5F")
)

// Renderer writes numbered output lines, optionally colour styled
type Renderer struct {
	w      io.Writer
	styled bool

	prefixStyle  lipgloss.Style
	valueStyle   lipgloss.Style
	noRouteStyle lipgloss.Style
	errorStyle   lipgloss.Style
}

// New creates a renderer writing to w. When color is true output is styled
// with ANSI colours regardless of what w is attached to.
func New(w io.Writer, color bool) *Renderer {
	r := &Renderer{w: w, styled: color}
	if !color {
		return r
	}

	lr := lipgloss.NewRenderer(w)
	lr.SetColorProfile(termenv.ANSI256)

	r.prefixStyle = lr.NewStyle().Foreground(prefixColor)
	r.valueStyle = lr.NewStyle().Foreground(valueColor).Bold(true)
	r.noRouteStyle = lr.NewStyle().Foreground(noRouteColor)
	r.errorStyle = lr.NewStyle().Foreground(errorColor)
	return r
}

// Styled reports whether output carries colour codes
func (r *Renderer) Styled() bool {
	return r.styled
}

// FormatResult returns the output line for a query result
func (r *Renderer) FormatResult(n int, res query.Result) string {
	if !res.Found {
		return r.line(n, res.String(), r.noRouteStyle)
	}
	return r.line(n, res.String(), r.valueStyle)
}

// FormatError returns the output line for a rejected command
func (r *Renderer) FormatError(n int, err error) string {
	return r.line(n, LineMessage(err), r.errorStyle)
}

// FormatFatal returns the unnumbered lines reported for a setup failure
func (r *Renderer) FormatFatal(err error) []string {
	msgs := FatalMessages(err)
	if r.styled {
		for i, m := range msgs {
			msgs[i] = r.errorStyle.Render(m)
		}
	}
	return msgs
}

// Result writes a result line
func (r *Renderer) Result(n int, res query.Result) error {
	return r.println(r.FormatResult(n, res))
}

// Error writes a per-line error
func (r *Renderer) Error(n int, err error) error {
	return r.println(r.FormatError(n, err))
}

// Fatal writes the setup failure messages
func (r *Renderer) Fatal(err error) error {
	for _, m := range r.FormatFatal(err) {
		if err := r.println(m); err != nil {
			return err
		}
	}
	return nil
}

// Message writes an unnumbered plain line
func (r *Renderer) Message(msg string) error {
	return r.println(msg)
}

func (r *Renderer) line(n int, body string, style lipgloss.Style) string {
	prefix := fmt.Sprintf("Output #%d:", n)
	if r.styled {
		return r.prefixStyle.Render(prefix) + " " + style.Render(body)
	}
	return prefix + " " + body
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.w, s)
	return err
}
