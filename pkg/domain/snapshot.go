package domain

// Snapshot is a serializable view of a node and its descendants.
type Snapshot struct {
	ID       string         `json:"id"`
	Kind     string         `json:"kind"`
	State    LifecycleState `json:"state"`
	Response Response       `json:"response"`
	Children []Snapshot     `json:"children,omitempty"`
}

// Walk visits s and every descendant depth first, parents before children.
// fn returning false prunes the subtree below the visited node.
func (s Snapshot) Walk(fn func(Snapshot) bool) {
	if !fn(s) {
		return
	}
	for _, c := range s.Children {
		c.Walk(fn)
	}
}

// Find returns the first node of s with the given identifier.
func (s Snapshot) Find(id string) (Snapshot, bool) {
	var (
		found Snapshot
		ok    bool
	)
	s.Walk(func(n Snapshot) bool {
		if ok {
			return false
		}
		if n.ID == id {
			found, ok = n, true
			return false
		}
		return true
	})
	return found, ok
}
