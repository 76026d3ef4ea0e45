package memory

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"transaction-coordinator/internal/model"
	repo "transaction-coordinator/internal/transaction/repository"
)

// CreateTransaction stores a new Transaction and returns it with id and timestamps set.
func (r *implRepository) CreateTransaction(ctx context.Context, opt repo.CreateTransactionOptions) (model.Transaction, error) {
	t := cloneTransaction(opt.Transaction)
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	for i := range t.Contacts {
		if t.Contacts[i].ID == "" {
			t.Contacts[i].ID = uuid.NewString()
		}
	}
	now := r.now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[t.ID]; exists {
		r.l.Errorf(ctx, "%s: duplicate id %s", r.dsn("CreateTransaction"), t.ID)
		return model.Transaction{}, repo.ErrDuplicateID
	}
	r.items[t.ID] = t
	r.order = append(r.order, t.ID)
	return cloneTransaction(t), nil
}

// GetOneTransaction returns zero-value Transaction (ID == "") when nothing matches.
func (r *implRepository) GetOneTransaction(ctx context.Context, opt repo.GetOneTransactionOptions) (model.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[opt.ID]
	if !ok {
		return model.Transaction{}, nil
	}
	if !matches(t, opt.AgentID, opt.ContactEmail) {
		return model.Transaction{}, nil
	}
	return cloneTransaction(t), nil
}

// ListTransactions returns matches in insertion order and the total before pagination.
func (r *implRepository) ListTransactions(ctx context.Context, opt repo.ListTransactionsOptions) ([]model.Transaction, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []model.Transaction
	for _, id := range r.order {
		t := r.items[id]
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		if opt.TransactionType != "" && t.TransactionType != opt.TransactionType {
			continue
		}
		if !matches(t, opt.AgentID, opt.ContactEmail) {
			continue
		}
		matched = append(matched, t)
	}

	total := len(matched)
	start := min(max(opt.Offset, 0), total)
	end := total
	if opt.Limit > 0 {
		end = min(start+opt.Limit, total)
	}

	page := make([]model.Transaction, 0, end-start)
	for _, t := range matched[start:end] {
		page = append(page, cloneTransaction(t))
	}
	return page, total, nil
}

// UpdateTransaction returns zero-value Transaction when the id does not exist.
func (r *implRepository) UpdateTransaction(ctx context.Context, opt repo.UpdateTransactionOptions) (model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[opt.Transaction.ID]
	if !ok {
		return model.Transaction{}, nil
	}
	t := cloneTransaction(opt.Transaction)
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = r.now()
	r.items[t.ID] = t
	return cloneTransaction(t), nil
}

// DeleteTransaction is a no-op for unknown ids.
func (r *implRepository) DeleteTransaction(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return nil
	}
	delete(r.items, id)
	r.order = slices.DeleteFunc(r.order, func(s string) bool { return s == id })
	return nil
}

func matches(t model.Transaction, agentID, contactEmail string) bool {
	if agentID != "" && t.AssignedAgent != agentID {
		return false
	}
	if contactEmail != "" && !t.HasContactEmail(contactEmail) {
		return false
	}
	return true
}

func cloneTransaction(t model.Transaction) model.Transaction {
	t.Contacts = slices.Clone(t.Contacts)
	return t
}
