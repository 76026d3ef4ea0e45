package usecase

import (
	"context"

	"transaction-coordinator/internal/auth"
	"transaction-coordinator/internal/auth/repository"
	"transaction-coordinator/internal/model"
)

func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (auth.MeOutput, error) {
	s, err := uc.repo.GetSession(ctx, sc.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Me: GetSession: %v", err)
		return auth.MeOutput{}, err
	}
	if s.ID == "" {
		return auth.MeOutput{}, auth.ErrSessionNotFound
	}

	return auth.MeOutput{
		User:         s.User,
		Capabilities: capabilitiesOf(sc.Role),
		ExpiresAt:    s.ExpiresAt,
	}, nil
}

func capabilitiesOf(r model.Role) auth.Capabilities {
	c := auth.Capabilities{ManageTransactions: model.CanManageTransactions(r)}
	switch r.(type) {
	case model.Admin:
		c.DeleteTransactions = true
		c.ModifyTasks = true
		c.ViewTeam = true
	case model.Agent:
		c.ModifyTasks = true
	case model.Client:
	}
	return c
}

// ListUsers serves the directory to staff. Clients are refused.
func (uc *implUseCase) ListUsers(ctx context.Context, sc model.Scope, input auth.ListUsersInput) (auth.ListUsersOutput, error) {
	switch sc.Role.(type) {
	case model.Admin, model.Agent:
	default:
		return auth.ListUsersOutput{}, auth.ErrForbidden
	}

	users, err := uc.repo.ListUsers(ctx, repository.ListUsersOptions{Role: input.Role})
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.ListUsers: %v", err)
		return auth.ListUsersOutput{}, err
	}
	return auth.ListUsersOutput{Users: users}, nil
}

func (uc *implUseCase) Directory(ctx context.Context) ([]model.User, error) {
	users, err := uc.repo.ListUsers(ctx, repository.ListUsersOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Directory: %v", err)
		return nil, err
	}
	return users, nil
}
