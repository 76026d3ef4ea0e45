package usecase

import (
	"context"

	"transaction-coordinator/internal/transaction/repository"
	"transaction-coordinator/pkg/log"
)

// TaskStateCleaner drops the per-task progress stored for a transaction.
type TaskStateCleaner interface {
	DeleteTransactionStates(ctx context.Context, transactionID string) error
}

// implUseCase is the private implementation of transaction.UseCase.
type implUseCase struct {
	repo   repository.Repository
	states TaskStateCleaner
	l      log.Logger
}

// New creates a new transaction UseCase implementation.
func New(repo repository.Repository, states TaskStateCleaner, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		states: states,
		l:      l,
	}
}
