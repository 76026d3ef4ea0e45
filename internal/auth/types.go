package auth

import (
	"time"

	"transaction-coordinator/internal/model"
)

// Capabilities tells the client which actions its role unlocks.
type Capabilities struct {
	ManageTransactions bool
	DeleteTransactions bool
	ModifyTasks        bool
	ViewTeam           bool
}

// --- UseCase Inputs ---

type LoginInput struct {
	Email    string
	Password string
}

type ListUsersInput struct {
	Role model.RoleKind
}

// --- UseCase Outputs ---

type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      model.User
}

type MeOutput struct {
	User         model.User
	Capabilities Capabilities
	ExpiresAt    time.Time
}

type ListUsersOutput struct {
	Users []model.User
}
