package http

import (
	"time"

	"transaction-coordinator/internal/auth"
	"transaction-coordinator/internal/model"
)

type loginReq struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{Email: r.Email, Password: r.Password}
}

type listUsersReq struct {
	Role string `form:"role" binding:"omitempty,oneof=admin agent client"`
}

type loginResp struct {
	Token     string     `json:"token"`
	TokenType string     `json:"token_type"`
	ExpiresAt time.Time  `json:"expires_at"`
	User      model.User `json:"user"`
}

func (h *handler) newLoginResp(out auth.LoginOutput) loginResp {
	return loginResp{
		Token:     out.Token,
		TokenType: "Bearer",
		ExpiresAt: out.ExpiresAt,
		User:      out.User,
	}
}

type capabilitiesResp struct {
	ManageTransactions bool `json:"manage_transactions"`
	DeleteTransactions bool `json:"delete_transactions"`
	ModifyTasks        bool `json:"modify_tasks"`
	ViewTeam           bool `json:"view_team"`
}

type meResp struct {
	User         model.User       `json:"user"`
	Capabilities capabilitiesResp `json:"capabilities"`
	ExpiresAt    time.Time        `json:"expires_at"`
}

func (h *handler) newMeResp(out auth.MeOutput) meResp {
	return meResp{
		User: out.User,
		Capabilities: capabilitiesResp{
			ManageTransactions: out.Capabilities.ManageTransactions,
			DeleteTransactions: out.Capabilities.DeleteTransactions,
			ModifyTasks:        out.Capabilities.ModifyTasks,
			ViewTeam:           out.Capabilities.ViewTeam,
		},
		ExpiresAt: out.ExpiresAt,
	}
}

type usersResp struct {
	Users []model.User `json:"users"`
}
