package models

// SessionState is the per-principal login flag.
type SessionState bool

const (
	LoggedOut SessionState = false
	LoggedIn  SessionState = true
)

func (s SessionState) String() string {
	if s == LoggedIn {
		return "logged_in"
	}
	return "logged_out"
}
