package usecase

import (
	"transaction-coordinator/internal/auth"
	"transaction-coordinator/internal/checklist"
	"transaction-coordinator/internal/task"
	"transaction-coordinator/pkg/log"
)

// implUseCase is the private implementation of dashboard.UseCase.
type implUseCase struct {
	l         log.Logger
	taskUC    task.UseCase
	authUC    auth.UseCase
	checklist checklist.Service
}

// New creates a new dashboard UseCase.
func New(l log.Logger, taskUC task.UseCase, authUC auth.UseCase, checklistSvc checklist.Service) *implUseCase {
	return &implUseCase{
		l:         l,
		taskUC:    taskUC,
		authUC:    authUC,
		checklist: checklistSvc,
	}
}
