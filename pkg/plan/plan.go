package plan

import (
	"github.com/arthur-debert/fscode/pkg/errors"
	"github.com/arthur-debert/fscode/pkg/logging"
)

// Options selects how the planner breaks rename cycles.
type Options struct {
	// Policy is PolicyDetour or PolicyExchange.
	Policy string

	// TempTemplate is the base name for temporary detour paths.
	TempTemplate string

	// Rotate lets the exchange policy decompose cycles longer than two
	// into pairwise swaps.
	Rotate bool

	// Fallback falls back to the detour policy when exchange cannot
	// break a cycle; when false, planning fails instead.
	Fallback bool
}

// DefaultOptions mirror the shipped configuration defaults.
var DefaultOptions = Options{
	Policy:       PolicyDetour,
	TempTemplate: "./__mv_tmp",
	Rotate:       true,
	Fallback:     true,
}

// Build runs the full planning pipeline: classify intents, wire the
// dependency graph, break cycles, and emit the ordered action list.
// It is fail-fast: on any error the returned action list is nil.
func Build(snap *Snapshot, rows []EditRow, opts Options) ([]Action, error) {
	logger := logging.GetLogger("plan")

	switch opts.Policy {
	case PolicyDetour, PolicyExchange:
	case "":
		opts.Policy = PolicyDetour
	default:
		return nil, errors.Newf(errors.ErrPolicyUnsupported, "unknown cycle policy %q", opts.Policy).
			WithDetail("policy", opts.Policy)
	}
	if opts.TempTemplate == "" {
		opts.TempTemplate = DefaultOptions.TempTemplate
	}

	intents, err := ResolveIntents(snap, rows)
	if err != nil {
		return nil, err
	}

	units := lowerIntents(intents)

	// Temporary names must dodge every path the plan touches.
	taken := make(map[string]bool)
	for _, id := range snap.IDs() {
		p, _ := snap.Path(id)
		taken[p] = true
	}
	for _, u := range units {
		if p := u.writesTo(); p != "" {
			taken[p] = true
		}
	}
	tmp := newTempNamer(opts.TempTemplate, taken)

	g, err := buildGraph(snap, units, tmp)
	if err != nil {
		return nil, err
	}

	cycles := findCycles(g)
	actions, err := orderActions(g, cycles, opts, tmp)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Int("intents", len(intents)).
		Int("cycles", len(cycles)).
		Int("actions", len(actions)).
		Str("policy", opts.Policy).
		Msg("Plan built")
	return actions, nil
}
