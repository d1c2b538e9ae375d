package session

// State is the lifecycle state of a browser session's store
type State int

const (
	// StateInitializing is the state before the first session check
	// against the auth gateway has resolved
	StateInitializing State = iota
	// StateAnonymous means the session resolved without an identity
	StateAnonymous
	// StateAuthenticated means the session holds a live identity
	StateAuthenticated
	// StateLoggingOut is the window between a logout being invoked
	// and the redirect to the public landing route completing
	StateLoggingOut
)

// String returns the state name for logging
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	case StateLoggingOut:
		return "logging_out"
	default:
		return "unknown"
	}
}
