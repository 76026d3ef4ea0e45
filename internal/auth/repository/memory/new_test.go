package memory

import (
	"context"
	"testing"
	"time"

	"transaction-coordinator/internal/auth/repository"
	"transaction-coordinator/internal/model"
)

func TestDirectory(t *testing.T) {
	ctx := context.Background()
	r := New(DemoUsers(), 10, time.Hour)

	u, _ := r.GetUserByEmail(ctx, "  Sarah@PAREALESTATE.com ")
	if u.ID != "2" || u.Role != model.RoleKindAgent {
		t.Errorf("user = %+v", u)
	}
	if u, _ := r.GetUserByEmail(ctx, "nobody@example.com"); u.ID != "" {
		t.Errorf("unknown user = %+v", u)
	}

	agents, _ := r.ListUsers(ctx, repository.ListUsersOptions{Role: model.RoleKindAgent})
	if len(agents) != 5 {
		t.Errorf("agents = %d", len(agents))
	}
	all, _ := r.ListUsers(ctx, repository.ListUsersOptions{})
	if len(all) != 7 {
		t.Errorf("all = %d", len(all))
	}
}

func TestSessions(t *testing.T) {
	ctx := context.Background()
	r := New(DemoUsers(), 2, time.Hour)

	for _, id := range []string{"a", "b", "c"} {
		if err := r.SaveSession(ctx, model.Session{ID: id, User: model.User{ID: "1"}}); err != nil {
			t.Fatalf("SaveSession: %v", err)
		}
	}
	if s, _ := r.GetSession(ctx, "a"); s.ID != "" {
		t.Error("oldest session should be evicted")
	}
	if s, _ := r.GetSession(ctx, "c"); s.ID != "c" {
		t.Errorf("session = %+v", s)
	}

	_ = r.DeleteSession(ctx, "c")
	if s, _ := r.GetSession(ctx, "c"); s.ID != "" {
		t.Error("deleted session still present")
	}
}
