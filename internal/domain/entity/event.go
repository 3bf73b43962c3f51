package entity

// Action is the kind of change an Event announces.
type Action int

const (
	// ActionWillChange is posted before a unit changes state.
	ActionWillChange Action = iota
	// ActionDidChange is posted after a unit changed state.
	ActionDidChange
)

func (a Action) String() string {
	switch a {
	case ActionWillChange:
		return "will_change"
	case ActionDidChange:
		return "did_change"
	default:
		return "unknown"
	}
}

// Event is an immutable notification broadcast by an interactor.
// Payload is arbitrary associated data and is unrelated to Context.
type Event struct {
	action  Action
	payload any
}

// NewEvent creates an event for the given action and payload.
func NewEvent(action Action, payload any) Event {
	return Event{action: action, payload: payload}
}

// Action returns the event's action.
func (e Event) Action() Action {
	return e.action
}

// Payload returns the data attached to the event, or nil.
func (e Event) Payload() any {
	return e.payload
}
