package session

// Status is the coarse login state.
type Status int

const (
	// StatusRestoring is the state before Restore has run.
	StatusRestoring Status = iota
	StatusLoggedOut
	StatusLoggedIn
)

func (s Status) String() string {
	switch s {
	case StatusRestoring:
		return "restoring"
	case StatusLoggedOut:
		return "logged out"
	case StatusLoggedIn:
		return "logged in"
	default:
		return "unknown"
	}
}

// State is a snapshot of the manager. Username is set only when Status is
// StatusLoggedIn.
type State struct {
	Status   Status
	Username string
}

func LoggedOut() State {
	return State{Status: StatusLoggedOut}
}

func LoggedIn(username string) State {
	return State{Status: StatusLoggedIn, Username: username}
}

func (s State) IsLoggedIn() bool {
	return s.Status == StatusLoggedIn
}

func (s State) String() string {
	if s.IsLoggedIn() {
		return s.Status.String() + "(" + s.Username + ")"
	}
	return s.Status.String()
}
