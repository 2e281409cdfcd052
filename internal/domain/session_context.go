package domain

// SessionContext authentication context passed explicitly into the booking flow.
// Only the presence of the token is checked; it is forwarded to the availability service.
type SessionContext struct {
	Token string
}

// IsAuthenticated returns true if a session token is present
func (c SessionContext) IsAuthenticated() bool {
	return c.Token != ""
}
