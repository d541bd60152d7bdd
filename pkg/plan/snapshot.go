package plan

import (
	"fmt"
	"strings"
)

// Snapshot is the immutable ID to original-path mapping captured before
// the user edits the table. IDs start at 1; 0 is reserved for rows that
// create new entities.
type Snapshot struct {
	order []int
	paths map[int]string
}

// NewSnapshot assigns IDs 1..n to the given paths in order.
func NewSnapshot(paths []string) *Snapshot {
	s := &Snapshot{paths: make(map[int]string, len(paths))}
	for i, p := range paths {
		id := i + 1
		s.order = append(s.order, id)
		s.paths[id] = p
	}
	return s
}

// Path returns the original path for an ID.
func (s *Snapshot) Path(id int) (string, bool) {
	p, ok := s.paths[id]
	return p, ok
}

// Has reports whether the ID exists in the snapshot.
func (s *Snapshot) Has(id int) bool {
	_, ok := s.paths[id]
	return ok
}

// IDs returns the snapshot IDs in insertion order.
func (s *Snapshot) IDs() []int {
	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of entries.
func (s *Snapshot) Len() int {
	return len(s.order)
}

const renderHeader = `# fscode edit plan
# Format: ID<TAB>path
# Lines starting with '#' are ignored.
#
#   delete a file:  remove its line (or comment it out)
#   rename / move:  edit the path
#   copy:           add a line with the same ID and a new path
#   create:         add a line with ID 0 and the new path
#   symlink:        add a line with ID 0, the link path, and the target
#
# Paths containing tabs, newlines, quotes or backslashes must be
# double-quoted; inside quotes the escapes \" \\ \t \n are recognized.
`

// Render produces the editable table text for this snapshot.
func (s *Snapshot) Render() string {
	var b strings.Builder
	b.WriteString(renderHeader)
	for _, id := range s.order {
		fmt.Fprintf(&b, "%d\t%s\n", id, escapeField(s.paths[id]))
	}
	return b.String()
}

// escapeField quotes a field for the table when it contains characters
// the parser would otherwise misread.
func escapeField(s string) string {
	if s != "" && !strings.ContainsAny(s, "\"\\\t\n") && strings.TrimSpace(s) == s {
		return s
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
