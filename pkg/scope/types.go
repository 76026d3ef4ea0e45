package scope

import "time"

// Payload is what a session token carries.
type Payload struct {
	SessionID string
	UserID    string
	Role      string
	ExpiresAt time.Time
}
