package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/notification/repository"
)

type implRepository struct {
	mu       sync.RWMutex
	defaults model.NotificationSettings
	settings map[string]model.NotificationSettings
	states   map[string]model.NotificationState
}

// New creates an in-memory notification store. Users without saved settings get defaults.
func New(defaults model.NotificationSettings) repository.Repository {
	return &implRepository{
		defaults: defaults,
		settings: make(map[string]model.NotificationSettings),
		states:   make(map[string]model.NotificationState),
	}
}

func (r *implRepository) GetSettings(ctx context.Context, userID string) (model.NotificationSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.settings[userID]
	if !ok {
		s = r.defaults
	}
	s.ReminderDays = slices.Clone(s.ReminderDays)
	return s, nil
}

func (r *implRepository) SaveSettings(ctx context.Context, userID string, s model.NotificationSettings) (model.NotificationSettings, error) {
	s.ReminderDays = slices.Clone(s.ReminderDays)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings[userID] = s
	return s, nil
}

func (r *implRepository) GetState(ctx context.Context, userID string) (model.NotificationState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st := r.states[userID]
	return model.NotificationState{
		Read:      cloneSet(st.Read),
		Dismissed: cloneSet(st.Dismissed),
	}, nil
}

func (r *implRepository) SaveState(ctx context.Context, userID string, st model.NotificationState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states[userID] = model.NotificationState{
		Read:      cloneSet(st.Read),
		Dismissed: cloneSet(st.Dismissed),
	}
	return nil
}

func cloneSet(m map[string]bool) map[string]bool {
	if m == nil {
		return make(map[string]bool)
	}
	return maps.Clone(m)
}
