package domain

// NodeDiff describes how a single node changed between two snapshots.
// Nil fields did not change.
type NodeDiff struct {
	ID       string          `json:"id"`
	Kind     string          `json:"kind"`
	State    *LifecycleState `json:"state,omitempty"`
	Response *Response       `json:"response,omitempty"`
}

// Diff lists the nodes of newSnap whose state or response differ from the
// node with the same identifier in oldSnap.
// If oldSnap is nil, every node of newSnap is reported (initial load).
func Diff(oldSnap, newSnap *Snapshot) []NodeDiff {
	if newSnap == nil {
		return nil
	}

	previous := make(map[string]Snapshot)
	if oldSnap != nil {
		oldSnap.Walk(func(n Snapshot) bool {
			previous[n.ID] = n
			return true
		})
	}

	var diffs []NodeDiff
	newSnap.Walk(func(n Snapshot) bool {
		d := NodeDiff{ID: n.ID, Kind: n.Kind}
		old, seen := previous[n.ID]
		if !seen || old.State != n.State {
			state := n.State
			d.State = &state
		}
		if !seen || old.Response != n.Response {
			resp := n.Response
			d.Response = &resp
		}
		if !d.IsEmpty() {
			diffs = append(diffs, d)
		}
		return true
	})
	return diffs
}

// IsEmpty checks if the diff contains any actionable changes.
func (d NodeDiff) IsEmpty() bool {
	return d.State == nil && d.Response == nil
}
