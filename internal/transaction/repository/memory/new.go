package memory

import (
	"fmt"
	"sync"
	"time"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/transaction/repository"
	"transaction-coordinator/pkg/log"
)

type implRepository struct {
	l     log.Logger
	now   func() time.Time
	mu    sync.RWMutex
	items map[string]model.Transaction
	order []string
}

// New creates an in-memory Repository for the transaction domain.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		l:     l,
		now:   time.Now,
		items: make(map[string]model.Transaction),
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("transaction/repository/memory.%s", method)
}
