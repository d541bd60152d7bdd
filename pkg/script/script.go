// Package script turns an ordered action list into an executable
// POSIX shell script. Command names come from configuration so users
// can swap mv/cp/rm for their own wrappers.
package script

import (
	"os"
	"strings"

	"github.com/arthur-debert/fscode/pkg/config"
	"github.com/arthur-debert/fscode/pkg/errors"
	"github.com/arthur-debert/fscode/pkg/plan"
)

const header = "#!/bin/sh\n# generated by fscode. Review before running.\nset -e\n"

// Templates holds the command line templates for each action kind plus
// an optional prefix prepended to every command (e.g. "sudo").
type Templates struct {
	Move     string
	Copy     string
	Remove   string
	Create   string
	Link     string
	Exchange string
	Prefix   string
}

// TemplatesFromConfig picks the emitter templates out of a merged
// configuration.
func TemplatesFromConfig(cfg *config.Config) Templates {
	return Templates{
		Move:     cfg.Commands.Move,
		Copy:     cfg.Commands.Copy,
		Remove:   cfg.Commands.Remove,
		Create:   cfg.Commands.Create,
		Link:     cfg.Commands.Link,
		Exchange: cfg.Commands.Exchange,
		Prefix:   cfg.Prefix,
	}
}

// Emitter renders actions into shell lines.
type Emitter struct {
	tpl Templates
}

func NewEmitter(tpl Templates) *Emitter {
	return &Emitter{tpl: tpl}
}

// Line renders a single action as one shell line.
func (e *Emitter) Line(a plan.Action) (string, error) {
	if a.Kind == plan.ActionComment {
		return "# " + a.Text, nil
	}

	var tpl string
	var args []string
	switch a.Kind {
	case plan.ActionMove:
		tpl, args = e.tpl.Move, []string{a.From, a.To}
	case plan.ActionCopy:
		tpl, args = e.tpl.Copy, []string{a.From, a.To}
	case plan.ActionExchange:
		tpl, args = e.tpl.Exchange, []string{a.From, a.To}
	case plan.ActionDelete:
		tpl, args = e.tpl.Remove, []string{a.Path}
	case plan.ActionCreate:
		tpl, args = e.tpl.Create, []string{a.Path}
	case plan.ActionLink:
		// ln -snT TARGET LINK_NAME
		tpl, args = e.tpl.Link, []string{a.Target, a.Path}
	default:
		return "", errors.Newf(errors.ErrScriptRender, "unknown action kind %d", a.Kind)
	}
	if strings.TrimSpace(tpl) == "" {
		return "", errors.Newf(errors.ErrScriptRender, "empty command template for %s action", a.Kind).
			WithDetail("kind", a.Kind.String())
	}

	words := strings.Fields(tpl)
	if e.tpl.Prefix != "" {
		words = append(strings.Fields(e.tpl.Prefix), words...)
	}
	for _, arg := range args {
		words = append(words, Quote(arg))
	}
	return strings.Join(words, " "), nil
}

// Lines renders every action, preserving order.
func (e *Emitter) Lines(actions []plan.Action) ([]string, error) {
	lines := make([]string, 0, len(actions))
	for _, a := range actions {
		line, err := e.Line(a)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Render produces the full script text, shebang included. An empty
// action list still yields a valid script that does nothing.
func (e *Emitter) Render(actions []plan.Action) (string, error) {
	lines, err := e.Lines(actions)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(header)
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// WriteFile renders the script and writes it executable.
func (e *Emitter) WriteFile(path string, actions []plan.Action) error {
	text, err := e.Render(actions)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrScriptWrite, "failed to write script to %s", path).
			WithDetail("path", path)
	}
	return nil
}

// safeShellChars do not need quoting on a POSIX shell command line.
const safeShellChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_./+=:,@%^"

// Quote returns s single-quoted for a POSIX shell. Strings made only of
// safe characters pass through unquoted to keep scripts readable.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	safe := true
	for _, r := range s {
		if !strings.ContainsRune(safeShellChars, r) {
			safe = false
			break
		}
	}
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
