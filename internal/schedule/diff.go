package schedule

// ChangeKind classifies a reconciliation change operation.
type ChangeKind int

const (
	ChangeCreate ChangeKind = iota
	ChangeUpdate
	ChangeDelete
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeCreate:
		return "create"
	case ChangeUpdate:
		return "update"
	case ChangeDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Change is one calendar operation produced by Diff. New is set for creates
// and updates, Old for updates and deletes.
type Change struct {
	Kind ChangeKind
	Old  *CanonicalEvent
	New  *CanonicalEvent
}

// Diff compares the previous event snapshot against the current one and
// returns the operations needed to bring a calendar from the former to the
// latter. Events are matched by id; matched pairs that are content-equal
// produce nothing. Each id yields at most one operation: overlapping day
// segments legitimately produce duplicate ids within a snapshot, and the
// first occurrence wins.
//
// Diff is a pure function: it reads both snapshots and mutates neither.
// Emission order is deterministic. The current snapshot is walked in input
// order first (creates and updates), then the previous snapshot in input
// order (deletes).
func Diff(prev, curr []CanonicalEvent) []Change {
	prevByID := make(map[string]CanonicalEvent, len(prev))
	for _, ev := range prev {
		if _, ok := prevByID[ev.ID]; !ok {
			prevByID[ev.ID] = ev
		}
	}
	currByID := make(map[string]CanonicalEvent, len(curr))
	for _, ev := range curr {
		if _, ok := currByID[ev.ID]; !ok {
			currByID[ev.ID] = ev
		}
	}

	var changes []Change

	seen := make(map[string]bool, len(curr))
	for i := range curr {
		ev := curr[i]
		if seen[ev.ID] {
			continue
		}
		seen[ev.ID] = true

		old, ok := prevByID[ev.ID]
		if !ok {
			changes = append(changes, Change{Kind: ChangeCreate, New: &curr[i]})
			continue
		}
		if !old.ContentEqual(ev) {
			changes = append(changes, Change{Kind: ChangeUpdate, Old: &old, New: &curr[i]})
		}
	}

	deleted := make(map[string]bool, len(prev))
	for i := range prev {
		id := prev[i].ID
		if deleted[id] {
			continue
		}
		deleted[id] = true

		if _, ok := currByID[id]; !ok {
			changes = append(changes, Change{Kind: ChangeDelete, Old: &prev[i]})
		}
	}

	return changes
}
