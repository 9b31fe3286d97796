package auth

// SessionState is the admin panel's gate: a request either carries an
// authenticated session or it does not. There is no third state.
type SessionState string

const (
	StateAnonymous     SessionState = "anonymous"
	StateAuthenticated SessionState = "authenticated"
)

// Session is the two-state machine behind the panel. Modelling it as an
// explicit type with two transitions keeps the gate testable away from any
// HTTP handler.
type Session struct {
	state SessionState
}

func NewSession() *Session {
	return &Session{state: StateAnonymous}
}

func (s *Session) State() SessionState {
	return s.state
}

func (s *Session) Authenticated() bool {
	return s.state == StateAuthenticated
}

// LoginSuccess transitions the session to authenticated. Invoked by the
// login callback after the backend accepts the credentials.
func (s *Session) LoginSuccess() {
	s.state = StateAuthenticated
}

// Logout resets the session to anonymous.
func (s *Session) Logout() {
	s.state = StateAnonymous
}
