package domain

// Tally counts the responses of the children evaluated during one tick.
type Tally struct {
	Busy      int
	Failed    int
	Succeeded int
}

// Add counts r. Unknown responses are ignored.
func (t Tally) Add(r Response) Tally {
	switch r {
	case ResponseBusy:
		t.Busy++
	case ResponseFailed:
		t.Failed++
	case ResponseSucceeded:
		t.Succeeded++
	}
	return t
}

// Total is the number of counted responses.
func (t Tally) Total() int { return t.Busy + t.Failed + t.Succeeded }
