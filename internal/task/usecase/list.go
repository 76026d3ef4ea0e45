package usecase

import (
	"context"
	"fmt"

	"transaction-coordinator/internal/checklist"
	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/task"
)

// List returns the checklist of one visible transaction. Stats cover the unfiltered list.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	if input.Status != "" && !input.Status.Valid() {
		return task.ListOutput{}, fmt.Errorf("%w: status %q", task.ErrInvalidInput, input.Status)
	}
	if input.Category != "" && !input.Category.Valid() {
		return task.ListOutput{}, fmt.Errorf("%w: category %q", task.ErrInvalidInput, input.Category)
	}

	tx, err := uc.loadTransaction(ctx, sc, input.TransactionID)
	if err != nil {
		return task.ListOutput{}, err
	}
	tasks, err := uc.generate(ctx, tx, uc.Today())
	if err != nil {
		uc.l.Errorf(ctx, "uc.List generate: %v", err)
		return task.ListOutput{}, err
	}

	filtered := uc.checklist.Filter(tasks, checklist.Filter{Status: input.Status, Category: input.Category})
	items := make([]task.Item, len(filtered))
	for i, t := range filtered {
		items[i] = task.Item{Task: t, BlockedBy: uc.checklist.BlockedBy(t, tasks)}
	}

	return task.ListOutput{
		Transaction: tx,
		Items:       items,
		Stats:       uc.checklist.GetStats(tasks),
	}, nil
}

// Visible returns every visible transaction with its tasks derived as of today.
func (uc *implUseCase) Visible(ctx context.Context, sc model.Scope) ([]task.TransactionTasks, error) {
	txs, err := uc.txUC.Visible(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Visible txUC.Visible: %v", err)
		return nil, err
	}

	today := uc.Today()
	out := make([]task.TransactionTasks, 0, len(txs))
	for _, tx := range txs {
		tasks, err := uc.generate(ctx, tx, today)
		if err != nil {
			uc.l.Warnf(ctx, "uc.Visible: skipping transaction %s: %v", tx.ID, err)
			continue
		}
		out = append(out, task.TransactionTasks{Transaction: tx, Tasks: tasks})
	}
	return out, nil
}

// allTasks flattens Visible.
func (uc *implUseCase) allTasks(ctx context.Context, sc model.Scope) ([]task.TransactionTasks, []model.Task, error) {
	visible, err := uc.Visible(ctx, sc)
	if err != nil {
		return nil, nil, err
	}
	var tasks []model.Task
	for _, v := range visible {
		tasks = append(tasks, v.Tasks...)
	}
	return visible, tasks, nil
}
