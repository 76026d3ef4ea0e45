package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"transaction-coordinator/internal/auth"
	"transaction-coordinator/internal/model"
	"transaction-coordinator/pkg/scope"
)

func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Login: GetUserByEmail: %v", err)
		return auth.LoginOutput{}, err
	}
	if user.ID == "" {
		user = guestClient(email)
	}

	token, payload, err := uc.tokens.Sign(scope.Payload{
		SessionID: uuid.NewString(),
		UserID:    user.ID,
		Role:      string(user.Role),
	})
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Login: Sign: %v", err)
		return auth.LoginOutput{}, err
	}

	if err := uc.repo.SaveSession(ctx, model.Session{
		ID:        payload.SessionID,
		User:      user,
		CreatedAt: uc.now(),
		ExpiresAt: payload.ExpiresAt,
	}); err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Login: SaveSession: %v", err)
		return auth.LoginOutput{}, err
	}

	uc.l.Infof(ctx, "auth.usecase.Login: user=%s role=%s", user.ID, user.Role)
	return auth.LoginOutput{Token: token, ExpiresAt: payload.ExpiresAt, User: user}, nil
}

// guestClient is the client identity given to an email outside the directory.
// The id is stable per email so repeated logins see the same transactions.
func guestClient(email string) model.User {
	local, _, _ := strings.Cut(email, "@")
	return model.User{
		ID:        "client-" + uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email)).String(),
		FirstName: local,
		Email:     email,
		Role:      model.RoleKindClient,
	}
}

func (uc *implUseCase) Logout(ctx context.Context, sc model.Scope) error {
	if sc.SessionID == "" {
		return auth.ErrSessionNotFound
	}
	if err := uc.repo.DeleteSession(ctx, sc.SessionID); err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Logout: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) Resolve(ctx context.Context, token string) (model.Scope, error) {
	p, err := uc.tokens.Verify(token)
	if err != nil {
		return model.Scope{}, err
	}

	s, err := uc.repo.GetSession(ctx, p.SessionID)
	if err != nil {
		return model.Scope{}, err
	}
	if s.ID == "" || s.User.ID != p.UserID {
		return model.Scope{}, fmt.Errorf("%w: %s", auth.ErrSessionNotFound, p.SessionID)
	}

	return model.Scope{
		SessionID: s.ID,
		UserID:    s.User.ID,
		Email:     s.User.Email,
		Name:      strings.TrimSpace(s.User.FullName()),
		Role:      model.RoleOf(s.User),
		ExpiresAt: s.ExpiresAt,
	}, nil
}
