package model

import "time"

// Scope is the per-session identity handed to every use case.
// Created at login, discarded at logout.
type Scope struct {
	SessionID string
	UserID    string
	Email     string
	Name      string
	Role      Role
	ExpiresAt time.Time
}

// IsZero reports whether sc carries no session.
func (sc Scope) IsZero() bool {
	return sc.SessionID == "" && sc.UserID == ""
}

// User is a directory entry of the demo office.
type User struct {
	ID            string   `json:"id"`
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Email         string   `json:"email"`
	Role          RoleKind `json:"role"`
	LicenseNumber string   `json:"license_number,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	OfficeAddress string   `json:"office_address,omitempty"`
	AgentID       string   `json:"agent_id,omitempty"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Session is a logged-in user. Its id is the token's sid claim.
type Session struct {
	ID        string
	User      User
	CreatedAt time.Time
	ExpiresAt time.Time
}

// RoleOf builds the role variant of a directory user.
func RoleOf(u User) Role {
	switch u.Role {
	case RoleKindAdmin:
		return Admin{}
	case RoleKindAgent:
		return Agent{AgentID: u.ID}
	default:
		return Client{ClientID: u.ID, Email: u.Email, AgentID: u.AgentID}
	}
}
