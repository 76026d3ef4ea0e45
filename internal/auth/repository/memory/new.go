package memory

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"transaction-coordinator/internal/auth/repository"
	"transaction-coordinator/internal/model"
)

const (
	defaultMaxSessions = 10000
	defaultSessionTTL  = 24 * time.Hour
)

type implRepository struct {
	users    []model.User
	byEmail  map[string]model.User
	sessions *expirable.LRU[string, model.Session]
}

// New creates an in-memory directory over users with an expiring session store.
// The oldest session is evicted once maxSessions is reached.
func New(users []model.User, maxSessions int, ttl time.Duration) repository.Repository {
	if maxSessions <= 0 {
		maxSessions = defaultMaxSessions
	}
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	byEmail := make(map[string]model.User, len(users))
	for _, u := range users {
		byEmail[strings.ToLower(u.Email)] = u
	}
	return &implRepository{
		users:    users,
		byEmail:  byEmail,
		sessions: expirable.NewLRU[string, model.Session](maxSessions, nil, ttl),
	}
}

func (r *implRepository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return r.byEmail[strings.ToLower(strings.TrimSpace(email))], nil
}

func (r *implRepository) ListUsers(ctx context.Context, opt repository.ListUsersOptions) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		if opt.Role != "" && u.Role != opt.Role {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *implRepository) SaveSession(ctx context.Context, s model.Session) error {
	r.sessions.Add(s.ID, s)
	return nil
}

func (r *implRepository) GetSession(ctx context.Context, id string) (model.Session, error) {
	s, _ := r.sessions.Get(id)
	return s, nil
}

func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	r.sessions.Remove(id)
	return nil
}
