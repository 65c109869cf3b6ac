package domain

// Response is the outcome reported by a node after a tick.
type Response string

const (
	ResponseUnknown   Response = "unknown" // Before the first tick or right after a reset
	ResponseBusy      Response = "busy"
	ResponseFailed    Response = "failed"
	ResponseSucceeded Response = "succeeded"
)

func (r Response) String() string { return string(r) }

// Valid reports whether r may be assigned by a tick.
// ResponseUnknown is not a valid tick outcome.
func (r Response) Valid() bool {
	switch r {
	case ResponseBusy, ResponseFailed, ResponseSucceeded:
		return true
	}
	return false
}

// Terminal reports whether r ends the work of a node (failed or succeeded).
func (r Response) Terminal() bool {
	return r == ResponseFailed || r == ResponseSucceeded
}

// ParseResponse converts s into a Response accepted by a tick.
func ParseResponse(s string) (Response, error) {
	r := Response(s)
	if !r.Valid() {
		return ResponseUnknown, InvalidArgument("invalid response: %s", s)
	}
	return r, nil
}
