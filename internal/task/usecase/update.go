package usecase

import (
	"context"
	"fmt"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/task"
	"transaction-coordinator/internal/task/repository"
)

const maxNotesLength = 2000

// mutate loads one task, lets apply change its state, persists, and returns the re-derived task.
func (uc *implUseCase) mutate(ctx context.Context, sc model.Scope, ref task.TaskRef, apply func(*model.TaskState) error) (task.TaskOutput, error) {
	if !canModify(sc) {
		return task.TaskOutput{}, task.ErrForbidden
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	tx, err := uc.loadTransaction(ctx, sc, ref.TransactionID)
	if err != nil {
		return task.TaskOutput{}, err
	}
	today := uc.Today()
	tasks, err := uc.generate(ctx, tx, today)
	if err != nil {
		return task.TaskOutput{}, err
	}
	current, ok := findTask(tasks, ref.TemplateID)
	if !ok {
		return task.TaskOutput{}, task.ErrTaskNotFound
	}

	st := stateOf(current)
	if err := apply(&st); err != nil {
		return task.TaskOutput{}, err
	}

	if _, err := uc.repo.SaveState(ctx, repository.SaveStateOptions{TransactionID: tx.ID, State: st}); err != nil {
		uc.l.Errorf(ctx, "uc.mutate SaveState: %v", err)
		return task.TaskOutput{}, err
	}

	tasks, err = uc.generate(ctx, tx, today)
	if err != nil {
		return task.TaskOutput{}, err
	}
	updated, _ := findTask(tasks, ref.TemplateID)
	return task.TaskOutput{Task: updated}, nil
}

// Toggle flips completion and records who completed the task and when.
func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, ref task.TaskRef) (task.TaskOutput, error) {
	out, err := uc.mutate(ctx, sc, ref, func(st *model.TaskState) error {
		if st.Completed {
			st.Completed = false
			st.CompletedAt = nil
			st.CompletedBy = ""
			return nil
		}
		now := uc.now()
		st.Completed = true
		st.InProgress = false
		st.CompletedAt = &now
		st.CompletedBy = actorName(sc)
		return nil
	})
	if err != nil {
		return task.TaskOutput{}, err
	}
	uc.l.Infof(ctx, "uc.Toggle: task %s completed=%t by user %s", out.Task.ID, out.Task.Completed, sc.UserID)
	return out, nil
}

// SetStatus marks a task in progress or back to pending.
// Pending on a completed task reopens it; in_progress on a completed task is rejected.
func (uc *implUseCase) SetStatus(ctx context.Context, sc model.Scope, input task.SetStatusInput) (task.TaskOutput, error) {
	switch input.Status {
	case model.TaskStatusInProgress, model.TaskStatusPending:
	default:
		return task.TaskOutput{}, fmt.Errorf("%w: %q", task.ErrInvalidStatus, input.Status)
	}

	return uc.mutate(ctx, sc, input.TaskRef, func(st *model.TaskState) error {
		if input.Status == model.TaskStatusInProgress {
			if st.Completed {
				return fmt.Errorf("%w: task is completed", task.ErrInvalidStatus)
			}
			st.InProgress = true
			return nil
		}
		st.InProgress = false
		st.Completed = false
		st.CompletedAt = nil
		st.CompletedBy = ""
		return nil
	})
}

func (uc *implUseCase) UpdateNotes(ctx context.Context, sc model.Scope, input task.UpdateNotesInput) (task.TaskOutput, error) {
	if len(input.Notes) > maxNotesLength {
		return task.TaskOutput{}, fmt.Errorf("%w: notes longer than %d bytes", task.ErrInvalidInput, maxNotesLength)
	}
	return uc.mutate(ctx, sc, input.TaskRef, func(st *model.TaskState) error {
		st.Notes = input.Notes
		return nil
	})
}
