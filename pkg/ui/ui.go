// Package ui handles terminal output: format detection and the styled
// plan preview shown by dry runs.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/fscode/pkg/plan"
	"github.com/arthur-debert/fscode/pkg/ui/styles"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto automatically detects the appropriate format based on terminal capabilities
	FormatAuto Format = iota
	// FormatTerminal renders rich terminal output with colors and styling
	FormatTerminal
	// FormatText renders plain text output without any styling
	FormatText
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format: %s", s)
	}
}

// DetectFormat determines the appropriate output format based on
// environment and terminal capabilities.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}

// RenderPreview formats an action list for human review: one line per
// action, verb first, comments passed through. FormatAuto resolves
// against stdout.
func RenderPreview(actions []plan.Action, format Format) string {
	if format == FormatAuto {
		format = DetectFormat(os.Stdout)
	}
	styled := format == FormatTerminal

	var b strings.Builder
	for _, a := range actions {
		b.WriteString(previewLine(a, styled))
		b.WriteByte('\n')
	}
	return b.String()
}

func previewLine(a plan.Action, styled bool) string {
	if a.Kind == plan.ActionComment {
		line := "# " + a.Text
		if styled {
			return styles.GetStyle("Comment").Render(line)
		}
		return line
	}

	verb := a.Kind.String()
	var detail string
	switch a.Kind {
	case plan.ActionMove, plan.ActionCopy:
		detail = a.From + arrow(" -> ", styled) + a.To
	case plan.ActionExchange:
		detail = a.From + arrow(" <-> ", styled) + a.To
	case plan.ActionLink:
		detail = a.Path + arrow(" -> ", styled) + a.Target
	default:
		detail = a.Path
	}

	if styled {
		verb = styles.GetStyle("Verb").Inherit(verbStyle(a.Kind)).Render(verb)
		return verb + detail
	}
	return fmt.Sprintf("%-10s%s", verb, detail)
}

func arrow(s string, styled bool) string {
	if styled {
		return styles.GetStyle("Arrow").Render(s)
	}
	return s
}

func verbStyle(k plan.ActionKind) lipgloss.Style {
	switch k {
	case plan.ActionMove:
		return styles.GetStyle("Move")
	case plan.ActionCopy:
		return styles.GetStyle("Copy")
	case plan.ActionDelete:
		return styles.GetStyle("Delete")
	case plan.ActionCreate:
		return styles.GetStyle("Create")
	case plan.ActionLink:
		return styles.GetStyle("Link")
	case plan.ActionExchange:
		return styles.GetStyle("Exchange")
	default:
		return styles.GetStyle("Path")
	}
}
