package plan

// phase buckets the final ordering: copies lead, then the move graph,
// then unconstrained deletes, then creations. Dependency edges can pull
// a unit earlier than its phase suggests (a delete a move waits on runs
// before that move).
func phase(k unitKind) int {
	switch k {
	case unitCopy:
		return 0
	case unitMove:
		return 1
	case unitDelete:
		return 2
	default:
		return 3
	}
}

// scheduleItem is either a single unit or a pre-rendered cycle block.
type scheduleItem struct {
	unit    int   // index into g.units, -1 for cycle blocks
	members []int // cycle block member units
	actions []Action
	ph      int
	order   int
	dep     int // index into g.units the item waits on, -1 if none
}

// orderActions performs the priority topological sort: among all items
// whose dependency has executed, the one with the lowest (phase, lowered
// order) runs next. Ties cannot occur because lowered orders are unique.
func orderActions(g *graph, cycles [][]int, opts Options, tmp *tempNamer) ([]Action, error) {
	inCycle := make(map[int]bool)
	var items []scheduleItem

	for _, members := range cycles {
		actions, err := resolveCycle(g, members, opts, tmp)
		if err != nil {
			return nil, err
		}
		lead := members[0]
		items = append(items, scheduleItem{
			unit:    -1,
			members: members,
			actions: actions,
			ph:      phase(unitMove),
			order:   g.units[lead].order,
			dep:     -1,
		})
		for _, m := range members {
			inCycle[m] = true
		}
	}

	for i := range g.units {
		if inCycle[i] {
			continue
		}
		items = append(items, scheduleItem{
			unit:  i,
			ph:    phase(g.units[i].kind),
			order: g.units[i].order,
			dep:   g.dep[i],
		})
	}

	executed := make(map[int]bool) // unit indices that have run
	emitted := make([]bool, len(items))
	var out []Action

	for done := 0; done < len(items); done++ {
		best := -1
		for i := range items {
			if emitted[i] {
				continue
			}
			if d := items[i].dep; d != -1 && !executed[d] {
				continue
			}
			if best == -1 || items[i].ph < items[best].ph ||
				(items[i].ph == items[best].ph && items[i].order < items[best].order) {
				best = i
			}
		}

		it := items[best]
		emitted[best] = true
		if it.unit == -1 {
			for _, m := range it.members {
				executed[m] = true
			}
			out = append(out, it.actions...)
			continue
		}
		executed[it.unit] = true
		out = append(out, unitAction(g.units[it.unit]))
	}

	return out, nil
}

func unitAction(u unit) Action {
	switch u.kind {
	case unitCopy:
		return Action{Kind: ActionCopy, From: u.from, To: u.to}
	case unitMove:
		return Action{Kind: ActionMove, From: u.from, To: u.to}
	case unitDelete:
		return Action{Kind: ActionDelete, Path: u.path}
	case unitLink:
		return Action{Kind: ActionLink, Path: u.path, Target: u.target}
	default:
		return Action{Kind: ActionCreate, Path: u.path}
	}
}
