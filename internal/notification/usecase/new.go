package usecase

import (
	"sync"
	"time"

	"transaction-coordinator/internal/notification/repository"
	"transaction-coordinator/internal/task"
	"transaction-coordinator/pkg/log"
)

// implUseCase is the private implementation of notification.UseCase.
type implUseCase struct {
	l      log.Logger
	repo   repository.Repository
	taskUC task.UseCase
	now    func() time.Time

	// mu guards read-modify-write of stored notification state and settings.
	mu sync.Mutex
}

// New creates a new notification UseCase. clock may be nil to use time.Now.
func New(l log.Logger, repo repository.Repository, taskUC task.UseCase, clock func() time.Time) *implUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &implUseCase{
		l:      l,
		repo:   repo,
		taskUC: taskUC,
		now:    clock,
	}
}
