package plan

import (
	"github.com/arthur-debert/fscode/pkg/errors"
	"github.com/arthur-debert/fscode/pkg/logging"
)

// IntentKind identifies the resolved meaning of one ID's rows.
type IntentKind int

const (
	IntentKeep IntentKind = iota
	IntentMove
	IntentDelete
	IntentCopyFanout
	IntentCreate
	IntentLink
)

// String returns a stable lowercase name for the intent kind.
func (k IntentKind) String() string {
	switch k {
	case IntentKeep:
		return "keep"
	case IntentMove:
		return "move"
	case IntentDelete:
		return "delete"
	case IntentCopyFanout:
		return "copy-fanout"
	case IntentCreate:
		return "create"
	case IntentLink:
		return "link"
	default:
		return "unknown"
	}
}

// Intent is the classified meaning of all rows sharing one ID.
// Which fields are set depends on Kind:
//
//	Keep:        ID, From (the unchanged path)
//	Move:        ID, From, To
//	Delete:      ID, From (the original path to remove)
//	CopyFanout:  ID, From, To (primary relocation, empty when the
//	             original is kept), Copies (copy destinations, in row
//	             order, always sourced from From)
//	Create:      Path
//	Link:        Path (the link), Target
type Intent struct {
	Kind   IntentKind
	ID     int
	From   string
	To     string
	Copies []string
	Path   string
	Target string
}

// ResolveIntents groups rows by ID (first-seen order) and classifies each
// group against the snapshot. Snapshot IDs with no surviving rows become
// Delete intents, appended in snapshot order.
func ResolveIntents(snap *Snapshot, rows []EditRow) ([]Intent, error) {
	logger := logging.GetLogger("plan.intents")

	groups := make(map[int][]EditRow)
	for _, r := range rows {
		if r.ID == 0 {
			continue
		}
		groups[r.ID] = append(groups[r.ID], r)
	}

	var intents []Intent
	seen := make(map[int]bool)
	for _, r := range rows {
		if r.ID == 0 {
			if len(r.Args) > 0 {
				intents = append(intents, Intent{Kind: IntentLink, Path: r.Path, Target: r.Args[0]})
			} else {
				intents = append(intents, Intent{Kind: IntentCreate, Path: r.Path})
			}
			continue
		}
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true

		intent, err := classifyGroup(snap, r.ID, groups[r.ID])
		if err != nil {
			return nil, err
		}
		intents = append(intents, intent)
	}

	// IDs the user removed from the table are deletions.
	for _, id := range snap.IDs() {
		if !seen[id] {
			orig, _ := snap.Path(id)
			intents = append(intents, Intent{Kind: IntentDelete, ID: id, From: orig})
		}
	}

	logger.Debug().Int("rows", len(rows)).Int("intents", len(intents)).Msg("Resolved intents")
	return intents, nil
}

// classifyGroup resolves one ID's rows into a single intent. The primary
// relocation rule: if any row keeps the original path, the original
// survives and every other row is a copy; otherwise the first row is the
// primary relocation and the rest are copies sourced from the original.
func classifyGroup(snap *Snapshot, id int, group []EditRow) (Intent, error) {
	orig, _ := snap.Path(id)

	if len(group) == 1 {
		p := group[0].Path
		if p == orig {
			return Intent{Kind: IntentKeep, ID: id, From: orig}, nil
		}
		return Intent{Kind: IntentMove, ID: id, From: orig, To: p}, nil
	}

	kept := false
	for _, r := range group {
		if r.Path == orig {
			kept = true
			break
		}
	}

	intent := Intent{Kind: IntentCopyFanout, ID: id, From: orig}
	destSeen := map[string]bool{orig: true}
	for i, r := range group {
		if r.Path == orig {
			continue
		}
		if destSeen[r.Path] {
			return Intent{}, resolutionError(id, r.Path)
		}
		destSeen[r.Path] = true

		if !kept && i == 0 {
			intent.To = r.Path
			continue
		}
		intent.Copies = append(intent.Copies, r.Path)
	}
	return intent, nil
}

func resolutionError(id int, path string) error {
	return errors.Newf(errors.ErrResolution, "ID %d: duplicate destination %q", id, path).
		WithDetail("id", id).
		WithDetail("conflict", path)
}
