package usecase

import (
	"time"

	"transaction-coordinator/internal/auth/repository"
	"transaction-coordinator/pkg/log"
	"transaction-coordinator/pkg/scope"
)

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	l      log.Logger
	repo   repository.Repository
	tokens *scope.Manager
	now    func() time.Time
}

// New creates a new auth UseCase.
func New(l log.Logger, repo repository.Repository, tokens *scope.Manager) *implUseCase {
	return &implUseCase{
		l:      l,
		repo:   repo,
		tokens: tokens,
		now:    time.Now,
	}
}
