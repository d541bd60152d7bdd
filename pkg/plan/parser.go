package plan

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/fscode/pkg/errors"
)

// EditRow is one parsed record of the edited table. Args is empty for
// everything except link-creation rows, where Args[0] is the link target.
type EditRow struct {
	ID   int
	Path string
	Args []string
}

// ParseRows parses the edited table text into an ordered row sequence.
// The snapshot is used only to validate IDs; parsing has no side effects.
func ParseRows(text string, snap *Snapshot) ([]EditRow, error) {
	var rows []EditRow
	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, parseError(lineNo, "row has no path field")
		}

		id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, parseError(lineNo, "non-numeric ID")
		}
		if id < 0 {
			return nil, parseError(lineNo, "negative ID")
		}
		if id != 0 && !snap.Has(id) {
			return nil, parseError(lineNo, "unknown ID "+strconv.Itoa(id))
		}

		path, reason := unescapeField(strings.TrimSpace(fields[1]))
		if reason != "" {
			return nil, parseError(lineNo, reason)
		}
		if path == "" {
			return nil, parseError(lineNo, "empty path")
		}

		var args []string
		for _, f := range fields[2:] {
			arg, reason := unescapeField(strings.TrimSpace(f))
			if reason != "" {
				return nil, parseError(lineNo, reason)
			}
			if arg == "" {
				return nil, parseError(lineNo, "empty field")
			}
			args = append(args, arg)
		}

		rows = append(rows, EditRow{ID: id, Path: path, Args: args})
	}
	return rows, nil
}

func parseError(line int, reason string) error {
	return errors.Newf(errors.ErrParse, "line %d: %s", line, reason).
		WithDetail("line", line).
		WithDetail("reason", reason)
}

// unescapeField reverses escapeField. Unquoted fields are taken verbatim;
// quoted fields support exactly the \" \\ \t \n escapes. The returned
// reason is empty on success.
func unescapeField(s string) (string, string) {
	if !strings.HasPrefix(s, `"`) {
		return s, ""
	}

	var b strings.Builder
	i := 1
	for i < len(s) {
		switch c := s[i]; c {
		case '\\':
			if i+1 >= len(s) {
				return "", "unterminated quoted path"
			}
			switch s[i+1] {
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			case 't':
				b.WriteByte('\t')
			case 'n':
				b.WriteByte('\n')
			default:
				return "", "unknown escape sequence \\" + string(s[i+1])
			}
			i += 2
		case '"':
			if i != len(s)-1 {
				return "", "trailing characters after closing quote"
			}
			return b.String(), ""
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", "unterminated quoted path"
}
