package plan

import (
	"strconv"

	"github.com/arthur-debert/fscode/pkg/errors"
)

// unitKind identifies one schedulable unit lowered from an intent.
type unitKind int

const (
	unitCopy unitKind = iota
	unitMove
	unitDelete
	unitCreate
	unitLink
)

// unit is a single vertex of the dependency graph. order preserves the
// position the unit was lowered in, used for deterministic tie-breaking.
type unit struct {
	kind   unitKind
	from   string // copy, move
	to     string // copy, move
	path   string // delete, create, link
	target string // link
	id     int
	order  int
}

// writesTo returns the path the unit writes, or "" for deletes.
func (u *unit) writesTo() string {
	switch u.kind {
	case unitCopy, unitMove:
		return u.to
	case unitCreate, unitLink:
		return u.path
	default:
		return ""
	}
}

// vacates returns the path the unit frees, or "" if none.
func (u *unit) vacates() string {
	switch u.kind {
	case unitMove:
		return u.from
	case unitDelete:
		return u.path
	default:
		return ""
	}
}

// lowerIntents flattens intents into schedulable units. Keeps emit
// nothing; fan-outs emit their primary move plus one copy per
// destination, all sourced from the original path.
func lowerIntents(intents []Intent) []unit {
	var units []unit
	order := 0
	add := func(u unit) {
		u.order = order
		order++
		units = append(units, u)
	}

	for _, in := range intents {
		switch in.Kind {
		case IntentKeep:
			// no action, ever
		case IntentMove:
			add(unit{kind: unitMove, from: in.From, to: in.To, id: in.ID})
		case IntentDelete:
			add(unit{kind: unitDelete, path: in.From, id: in.ID})
		case IntentCopyFanout:
			if in.To != "" {
				add(unit{kind: unitMove, from: in.From, to: in.To, id: in.ID})
			}
			for _, dest := range in.Copies {
				add(unit{kind: unitCopy, from: in.From, to: dest, id: in.ID})
			}
		case IntentCreate:
			add(unit{kind: unitCreate, path: in.Path})
		case IntentLink:
			add(unit{kind: unitLink, path: in.Path, target: in.Target})
		}
	}
	return units
}

// tempNamer hands out deterministic temporary paths that never collide
// with a path already participating in the plan.
type tempNamer struct {
	template string
	used     map[string]bool
	next     int
}

func newTempNamer(template string, taken map[string]bool) *tempNamer {
	used := make(map[string]bool, len(taken))
	for p := range taken {
		used[p] = true
	}
	return &tempNamer{template: template, used: used}
}

// Next returns a fresh temporary path: the template itself when free,
// otherwise template.1, template.2, ...
func (t *tempNamer) Next() string {
	for {
		name := t.template
		if t.next > 0 {
			name = t.template + "." + strconv.Itoa(t.next)
		}
		t.next++
		if !t.used[name] {
			t.used[name] = true
			return name
		}
	}
}

// graph is the dependency graph over units. dep[i] is the index of the
// unit that must run before unit i (-1 when unconstrained); each unit
// has at most one dependency because every path has at most one vacator.
type graph struct {
	units []unit
	dep   []int
}

// buildGraph wires unit dependencies and performs the conflict checks.
// A copy whose destination is occupied at plan start is rerouted through
// a temporary path so that every copy can run before anything else
// touches the filesystem; the second hop joins the move graph.
func buildGraph(snap *Snapshot, units []unit, tmp *tempNamer) (*graph, error) {
	originals := make(map[string]bool, snap.Len())
	for _, id := range snap.IDs() {
		p, _ := snap.Path(id)
		originals[p] = true
	}

	// Index the vacator of every original path that gets freed.
	vacator := make(map[string]int)
	for i := range units {
		if p := units[i].vacates(); p != "" {
			vacator[p] = i
		}
	}

	// Reroute copies onto occupied destinations through a temp path.
	nextOrder := len(units)
	for i := range units {
		u := &units[i]
		if u.kind != unitCopy || !originals[u.to] {
			continue
		}
		if _, freed := vacator[u.to]; !freed {
			return nil, conflictError(u.to)
		}
		dest := u.to
		u.to = tmp.Next()
		units = append(units, unit{kind: unitMove, from: u.to, to: dest, id: u.id, order: nextOrder})
		nextOrder++
	}

	// Every path may have at most one writer.
	writer := make(map[string]int)
	for i := range units {
		p := units[i].writesTo()
		if p == "" {
			continue
		}
		if _, dup := writer[p]; dup {
			return nil, resolutionError(units[i].id, p)
		}
		writer[p] = i
	}

	// A writer onto an occupied original depends on its vacator.
	dep := make([]int, len(units))
	for i := range units {
		dep[i] = -1
		p := units[i].writesTo()
		if p == "" || !originals[p] {
			continue
		}
		v, freed := vacator[p]
		if !freed {
			return nil, conflictError(p)
		}
		dep[i] = v
	}

	return &graph{units: units, dep: dep}, nil
}

func conflictError(path string) error {
	return errors.Newf(errors.ErrConflict, "destination %q collides with a path the plan never vacates", path).
		WithDetail("path", path)
}
