package memory

import (
	"context"
	"sync"
	"time"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/task/repository"
)

type implRepository struct {
	mu     sync.RWMutex
	now    func() time.Time
	states map[string]map[string]model.TaskState // transaction id -> task id -> state
}

// New creates an in-memory task state store.
func New() repository.StateRepository {
	return &implRepository{
		now:    time.Now,
		states: make(map[string]map[string]model.TaskState),
	}
}

func (r *implRepository) ListStates(ctx context.Context, transactionID string) (map[string]model.TaskState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]model.TaskState, len(r.states[transactionID]))
	for id, st := range r.states[transactionID] {
		out[id] = st
	}
	return out, nil
}

func (r *implRepository) SaveState(ctx context.Context, opt repository.SaveStateOptions) (model.TaskState, error) {
	st := opt.State
	st.UpdatedAt = r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	byTask, ok := r.states[opt.TransactionID]
	if !ok {
		byTask = make(map[string]model.TaskState)
		r.states[opt.TransactionID] = byTask
	}
	byTask[st.TaskID] = st
	return st, nil
}

func (r *implRepository) DeleteTransactionStates(ctx context.Context, transactionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.states, transactionID)
	return nil
}
