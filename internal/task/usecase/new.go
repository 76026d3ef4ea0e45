package usecase

import (
	"sync"
	"time"

	"transaction-coordinator/internal/checklist"
	"transaction-coordinator/internal/task/repository"
	"transaction-coordinator/internal/transaction"
	"transaction-coordinator/pkg/datemath"
	pkgLog "transaction-coordinator/pkg/log"
)

// Config holds the calendar settings of the task use case.
type Config struct {
	UpcomingWindowDays int
	ReminderMinutes    int
	UIDDomain          string
	CalendarName       string
	Clock              func() time.Time
}

type implUseCase struct {
	l         pkgLog.Logger
	txUC      transaction.UseCase
	checklist checklist.Service
	repo      repository.StateRepository
	dateMath  *datemath.Parser
	cfg       Config
	now       func() time.Time

	// mu serializes the read-generate-save cycle of task mutations.
	mu sync.Mutex
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	txUC transaction.UseCase,
	checklistSvc checklist.Service,
	repo repository.StateRepository,
	dateMath *datemath.Parser,
	cfg Config,
) *implUseCase {
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:         l,
		txUC:      txUC,
		checklist: checklistSvc,
		repo:      repo,
		dateMath:  dateMath,
		cfg:       cfg,
		now:       now,
	}
}
