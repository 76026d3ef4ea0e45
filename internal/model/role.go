package model

// RoleKind is the wire name of a role.
type RoleKind string

const (
	RoleKindAdmin  RoleKind = "admin"
	RoleKindAgent  RoleKind = "agent"
	RoleKindClient RoleKind = "client"
)

// Role is a closed set of variants: Admin, Agent, Client.
// Dispatch with a type switch over the three concrete types.
type Role interface {
	Kind() RoleKind
	isRole()
}

// Admin is a transaction coordinator with visibility over every transaction.
type Admin struct{}

// Agent sees the transactions they are assigned to.
type Agent struct {
	AgentID string
}

// Client sees the transactions they are a party to.
type Client struct {
	ClientID string
	Email    string
	AgentID  string
}

func (Admin) Kind() RoleKind  { return RoleKindAdmin }
func (Agent) Kind() RoleKind  { return RoleKindAgent }
func (Client) Kind() RoleKind { return RoleKindClient }

func (Admin) isRole()  {}
func (Agent) isRole()  {}
func (Client) isRole() {}

// CanManageTransactions reports whether the role may create or edit transactions.
func CanManageTransactions(r Role) bool {
	switch r.(type) {
	case Admin, Agent:
		return true
	case Client:
		return false
	default:
		return false
	}
}
