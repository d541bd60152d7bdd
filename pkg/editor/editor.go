// Package editor runs an interactive editing session: write the table
// to a temporary file, hand the terminal to the user's editor, and read
// the edited text back.
package editor

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/arthur-debert/fscode/pkg/errors"
	"github.com/arthur-debert/fscode/pkg/logging"
)

const fallbackEditor = "vi"

// Resolve picks the editor command line. Precedence: the explicit
// override (flag or config), then $VISUAL, then $EDITOR, then vi. The
// command line is split shell-style on whitespace and the binary must
// be on PATH.
func Resolve(override string) ([]string, error) {
	candidates := []string{override, os.Getenv("VISUAL"), os.Getenv("EDITOR"), fallbackEditor}

	var cmdline string
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			cmdline = c
			break
		}
	}

	words := strings.Fields(cmdline)
	if _, err := exec.LookPath(words[0]); err != nil {
		return nil, errors.Wrapf(err, errors.ErrEditorNotFound, "editor %q not found on PATH", words[0]).
			WithDetail("editor", words[0])
	}
	return words, nil
}

// Session owns one temporary edit file.
type Session struct {
	editor []string
	suffix string
}

// NewSession prepares an editing session. override and suffix come from
// flags and configuration.
func NewSession(override, suffix string) (*Session, error) {
	words, err := Resolve(override)
	if err != nil {
		return nil, err
	}
	return &Session{editor: words, suffix: suffix}, nil
}

// Edit writes text to a fresh temp file, blocks while the user edits
// it, and returns the file's final content. The temp file is removed
// on every path out.
func (s *Session) Edit(text string) (string, error) {
	logger := logging.GetLogger("editor")

	name := filepath.Join(os.TempDir(), "fscode-"+uuid.NewString()+s.suffix)
	if err := os.WriteFile(name, []byte(text), 0o600); err != nil {
		return "", errors.Wrapf(err, errors.ErrTempFile, "failed to create edit file %s", name)
	}
	defer func() {
		if err := os.Remove(name); err != nil {
			logger.Warn().Err(err).Str("path", name).Msg("Failed to remove edit file")
		}
	}()

	args := append(append([]string(nil), s.editor[1:]...), name)
	cmd := exec.Command(s.editor[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Debug().Strs("editor", s.editor).Str("file", name).Msg("Launching editor")
	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, errors.ErrEditorExit, "editor %q exited with an error", s.editor[0]).
			WithDetail("editor", s.editor[0])
	}

	edited, err := os.ReadFile(name)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTempFile, "failed to read edit file %s", name)
	}
	return string(edited), nil
}
