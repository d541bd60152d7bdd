package plan

import (
	"sort"
	"strings"

	"github.com/arthur-debert/fscode/pkg/errors"
)

// Cycle resolution policies.
const (
	PolicyDetour   = "detour"
	PolicyExchange = "exchange"
)

// findCycles walks the move-only dependency links with a three-color
// mark array and returns every rename cycle. Because each move has at
// most one dependency and at most one dependent, the move subgraph is a
// disjoint union of chains and simple cycles, so a cycle is found the
// moment a walk revisits an in-progress vertex.
//
// Members are returned in path-chase order: members[i] moves into the
// path that members[i-1] vacated (a -> b, b -> c, c -> a yields the
// moves in that sequence). Each cycle is rotated so its earliest-lowered
// member leads; cycles are sorted by (length, leading member order).
func findCycles(g *graph) [][]int {
	const (
		white = iota
		gray
		black
	)
	color := make([]int, len(g.units))

	var cycles [][]int
	for i := range g.units {
		if g.units[i].kind != unitMove || color[i] != white {
			continue
		}

		var trail []int
		j := i
		for j != -1 && g.units[j].kind == unitMove && color[j] == white {
			color[j] = gray
			trail = append(trail, j)
			j = g.dep[j]
		}

		if j != -1 && g.units[j].kind == unitMove && color[j] == gray {
			// The walk re-entered its own trail: everything from the
			// first visit of j onward is a cycle.
			start := 0
			for trail[start] != j {
				start++
			}
			cycles = append(cycles, rotateToLeader(trail[start:], g))
		}

		for _, v := range trail {
			color[v] = black
		}
	}

	sort.SliceStable(cycles, func(a, b int) bool {
		ca, cb := cycles[a], cycles[b]
		if len(ca) != len(cb) {
			return len(ca) < len(cb)
		}
		return g.units[ca[0]].order < g.units[cb[0]].order
	})
	return cycles
}

// rotateToLeader rotates cycle members so the earliest-lowered move
// comes first, keeping output stable across runs.
func rotateToLeader(members []int, g *graph) []int {
	lead := 0
	for i, m := range members {
		if g.units[m].order < g.units[members[lead]].order {
			lead = i
		}
	}
	out := make([]int, 0, len(members))
	out = append(out, members[lead:]...)
	out = append(out, members[:lead]...)
	return out
}

// resolveCycle rewrites one rename cycle into an executable action
// sequence under the given options.
func resolveCycle(g *graph, members []int, opts Options, tmp *tempNamer) ([]Action, error) {
	// Path-chase order: sources around the ring. members[0] is a -> b,
	// members[1] is b -> c, and the last member closes the ring.
	ring := make([]string, len(members))
	for i, m := range members {
		ring[i] = g.units[m].from
	}

	actions := []Action{{Kind: ActionComment, Text: "rename cycle: " + strings.Join(ring, " -> ") + " -> " + ring[0]}}

	policy := opts.Policy
	if policy == PolicyExchange && len(members) > 2 && !opts.Rotate {
		if !opts.Fallback {
			return nil, errors.Newf(errors.ErrPolicyUnsupported,
				"exchange policy limited to pairwise swaps cannot break a %d-cycle", len(members)).
				WithDetail("length", len(members))
		}
		policy = PolicyDetour
	}

	switch policy {
	case PolicyExchange:
		// A rotation decomposes into len-1 pairwise swaps, applied from
		// the far end of the ring back to the front.
		for i := len(members) - 2; i >= 0; i-- {
			u := g.units[members[i]]
			actions = append(actions, Action{Kind: ActionExchange, From: u.from, To: u.to})
		}
	default:
		// Detour: park the last member's source, run the rest of the
		// ring in dependency order, then finish the parked move.
		last := g.units[members[len(members)-1]]
		park := tmp.Next()
		actions = append(actions, Action{Kind: ActionMove, From: last.from, To: park})
		for i := len(members) - 2; i >= 0; i-- {
			u := g.units[members[i]]
			actions = append(actions, Action{Kind: ActionMove, From: u.from, To: u.to})
		}
		actions = append(actions, Action{Kind: ActionMove, From: park, To: last.to})
	}
	return actions, nil
}
