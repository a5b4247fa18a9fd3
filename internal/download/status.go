package download

// Status tracks where a download control is in its lifecycle.
type Status string

const (
	StatusIdle             Status = "idle"
	StatusInFlight         Status = "in_flight"
	StatusDone             Status = "done"
	StatusFailed           Status = "failed"
	StatusOpenedExternally Status = "opened_externally"
)

// validTransitions defines allowed state transitions.
// Key is the "from" status, value is list of valid "to" statuses.
// Terminal states only go back to idle, and only when the next download starts.
var validTransitions = map[Status][]Status{
	StatusIdle:             {StatusInFlight},
	StatusInFlight:         {StatusDone, StatusFailed},
	StatusDone:             {StatusIdle},
	StatusFailed:           {StatusOpenedExternally, StatusIdle},
	StatusOpenedExternally: {StatusIdle},
}

// CanTransitionTo returns true if transitioning from s to target is valid.
func (s Status) CanTransitionTo(target Status) bool {
	valid, ok := validTransitions[s]
	if !ok {
		return false
	}
	for _, v := range valid {
		if v == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true once a download has settled.
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusFailed || s == StatusOpenedExternally
}

// IsBusy returns true while a retrieval is outstanding.
func (s Status) IsBusy() bool {
	return s == StatusInFlight
}

func (s Status) String() string {
	return string(s)
}
