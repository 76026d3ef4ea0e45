package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"transaction-coordinator/internal/checklist"
	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/task"
	"transaction-coordinator/internal/transaction"
	"transaction-coordinator/pkg/datemath"
)

func (uc *implUseCase) Today() datemath.Date {
	return uc.dateMath.Today(uc.now())
}

// loadTransaction fetches a transaction through the caller's visibility rules.
func (uc *implUseCase) loadTransaction(ctx context.Context, sc model.Scope, id string) (model.Transaction, error) {
	out, err := uc.txUC.Detail(ctx, sc, id)
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			return model.Transaction{}, task.ErrTransactionNotFound
		}
		return model.Transaction{}, err
	}
	return out.Transaction, nil
}

// generate derives the checklist of tx merged with stored state.
func (uc *implUseCase) generate(ctx context.Context, tx model.Transaction, today datemath.Date) ([]model.Task, error) {
	states, err := uc.repo.ListStates(ctx, tx.ID)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.generate: ListStates: %v", err)
		return nil, err
	}

	assignee := tx.AssignedTC
	if assignee == "" {
		assignee = tx.AssignedAgent
	}

	tasks, err := uc.checklist.Generate(checklist.GenerateInput{
		TransactionID:   tx.ID,
		TransactionType: tx.TransactionType,
		ContractDate:    tx.ContractDate,
		AssignedTo:      assignee,
		Seed:            states,
		CreatedAt:       tx.CreatedAt,
	}, today)
	if err != nil {
		return nil, fmt.Errorf("%w: transaction %s: %v", task.ErrInvalidInput, tx.ID, err)
	}
	return tasks, nil
}

func findTask(tasks []model.Task, templateID string) (model.Task, bool) {
	i := slices.IndexFunc(tasks, func(t model.Task) bool { return t.TemplateID == templateID })
	if i < 0 {
		return model.Task{}, false
	}
	return tasks[i], true
}

// canModify reports whether the role may change task state.
func canModify(sc model.Scope) bool {
	switch sc.Role.(type) {
	case model.Admin, model.Agent:
		return true
	case model.Client:
		return false
	default:
		return false
	}
}

func actorName(sc model.Scope) string {
	if sc.Name != "" {
		return sc.Name
	}
	return sc.Email
}

func stateOf(t model.Task) model.TaskState {
	return model.TaskState{
		TaskID:      t.ID,
		Completed:   t.Completed,
		InProgress:  t.InProgress,
		CompletedAt: t.CompletedAt,
		CompletedBy: t.CompletedBy,
		Notes:       t.Notes,
	}
}

func sortByDue(tasks []model.Task) {
	slices.SortStableFunc(tasks, func(a, b model.Task) int {
		if c := a.DueDate.Compare(b.DueDate); c != 0 {
			return c
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
}
