package domain

// LifecycleState is the position of a node in its lifecycle.
type LifecycleState string

const (
	StateReady   LifecycleState = "ready"
	StateRunning LifecycleState = "running"
	StatePaused  LifecycleState = "paused"
	StateStopped LifecycleState = "stopped"
)

func (s LifecycleState) String() string { return string(s) }

// Event drives a lifecycle transition.
type Event string

const (
	EventStart  Event = "start"
	EventStop   Event = "stop"
	EventPause  Event = "pause"
	EventResume Event = "resume"
)

func (e Event) String() string { return string(e) }

// Events lists every lifecycle event in a stable order.
func Events() []Event {
	return []Event{EventStart, EventStop, EventPause, EventResume}
}

// ParseEvent converts s into an Event.
func ParseEvent(s string) (Event, error) {
	for _, e := range Events() {
		if string(e) == s {
			return e, nil
		}
	}
	return "", InvalidArgument("invalid event: %s", s)
}

var transitions = map[Event]map[LifecycleState]LifecycleState{
	EventStart: {
		StateReady:   StateRunning,
		StateStopped: StateRunning,
	},
	EventStop: {
		StateRunning: StateStopped,
		StatePaused:  StateStopped,
	},
	EventPause: {
		StateRunning: StatePaused,
	},
	EventResume: {
		StatePaused: StateRunning,
	},
}

// Transition returns the state reached by applying ev to from.
// An event that is not valid from the given state returns ErrInvalidState
// and from unchanged.
func Transition(from LifecycleState, ev Event) (LifecycleState, error) {
	targets, ok := transitions[ev]
	if !ok {
		return from, InvalidArgument("invalid event: %s", ev)
	}
	to, ok := targets[from]
	if !ok {
		return from, InvalidState("cannot %s when %s", ev, from)
	}
	return to, nil
}

// Can reports whether ev is valid from s.
func (s LifecycleState) Can(ev Event) bool {
	_, err := Transition(s, ev)
	return err == nil
}
