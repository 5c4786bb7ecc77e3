package entities

// Principal is the authenticated caller resolved from the session cookie.
// It is passed explicitly into every usecase that depends on who is asking.
type Principal struct {
	User      *User
	SessionID string
}
