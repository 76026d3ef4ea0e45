package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"transaction-coordinator/internal/auth"
	"transaction-coordinator/internal/auth/repository/memory"
	"transaction-coordinator/internal/auth/usecase"
	"transaction-coordinator/internal/model"
	"transaction-coordinator/pkg/scope"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newUseCase(t *testing.T) auth.UseCase {
	t.Helper()
	tokens, err := scope.NewManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return usecase.New(&mockLogger{}, memory.New(memory.DemoUsers(), 100, time.Hour), tokens)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		input    auth.LoginInput
		wantErr  error
		wantRole model.Role
	}{
		{"admin", auth.LoginInput{Email: "admin@parealestate.com", Password: "x"}, nil, model.Admin{}},
		{"agent mixed case", auth.LoginInput{Email: "Sarah@ParealEstate.com", Password: "x"}, nil, model.Agent{AgentID: "2"}},
		{"client", auth.LoginInput{Email: "john.smith@email.com", Password: "x"},
			nil, model.Client{ClientID: "3", Email: "john.smith@email.com", AgentID: "2"}},
		{"empty password", auth.LoginInput{Email: "admin@parealestate.com"}, auth.ErrInvalidCredentials, nil},
		{"blank email", auth.LoginInput{Email: "   ", Password: "x"}, auth.ErrInvalidCredentials, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(t)
			out, err := uc.Login(ctx, tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login: %v", err)
			}
			if out.Token == "" || out.ExpiresAt.IsZero() {
				t.Fatalf("output = %+v", out)
			}

			sc, err := uc.Resolve(ctx, out.Token)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if sc.Role != tt.wantRole || sc.UserID != out.User.ID || sc.SessionID == "" {
				t.Errorf("scope = %+v", sc)
			}
		})
	}
}

func TestLoginUnknownEmailIsClient(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)

	first, err := uc.Login(ctx, auth.LoginInput{Email: "buyer@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	second, _ := uc.Login(ctx, auth.LoginInput{Email: "BUYER@example.com", Password: "pw"})
	if first.User.ID != second.User.ID {
		t.Errorf("guest ids differ: %s vs %s", first.User.ID, second.User.ID)
	}

	sc, err := uc.Resolve(ctx, first.Token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	c, ok := sc.Role.(model.Client)
	if !ok || c.Email != "buyer@example.com" {
		t.Errorf("role = %#v", sc.Role)
	}
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)

	out, _ := uc.Login(ctx, auth.LoginInput{Email: "sarah@parealestate.com", Password: "x"})
	sc, err := uc.Resolve(ctx, out.Token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if err := uc.Logout(ctx, sc); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := uc.Resolve(ctx, out.Token); !errors.Is(err, auth.ErrSessionNotFound) {
		t.Errorf("Resolve after logout err = %v", err)
	}
}

func TestResolveRejectsForeignToken(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)

	other, _ := scope.NewManager("other-secret", time.Hour)
	token, _, _ := other.Sign(scope.Payload{SessionID: "s", UserID: "1", Role: "admin"})
	if _, err := uc.Resolve(ctx, token); !errors.Is(err, scope.ErrInvalidToken) {
		t.Errorf("err = %v", err)
	}
}

func TestMe(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		email string
		want  auth.Capabilities
	}{
		{"admin@parealestate.com", auth.Capabilities{ManageTransactions: true, DeleteTransactions: true, ModifyTasks: true, ViewTeam: true}},
		{"tom@parealestate.com", auth.Capabilities{ManageTransactions: true, ModifyTasks: true}},
		{"john.smith@email.com", auth.Capabilities{}},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			uc := newUseCase(t)
			out, _ := uc.Login(ctx, auth.LoginInput{Email: tt.email, Password: "x"})
			sc, _ := uc.Resolve(ctx, out.Token)

			me, err := uc.Me(ctx, sc)
			if err != nil {
				t.Fatalf("Me: %v", err)
			}
			if me.User.Email != tt.email || me.Capabilities != tt.want {
				t.Errorf("me = %+v", me)
			}
		})
	}
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)

	admin := model.Scope{SessionID: "s", UserID: "1", Role: model.Admin{}}
	out, err := uc.ListUsers(ctx, admin, auth.ListUsersInput{Role: model.RoleKindAgent})
	if err != nil || len(out.Users) != 5 {
		t.Fatalf("agents = %d, err = %v", len(out.Users), err)
	}

	client := model.Scope{SessionID: "s", UserID: "3", Role: model.Client{ClientID: "3"}}
	if _, err := uc.ListUsers(ctx, client, auth.ListUsersInput{}); !errors.Is(err, auth.ErrForbidden) {
		t.Errorf("client err = %v", err)
	}
}

func TestDirectory(t *testing.T) {
	users, err := newUseCase(t).Directory(context.Background())
	if err != nil || len(users) != 7 {
		t.Fatalf("users = %d, err = %v", len(users), err)
	}
}
