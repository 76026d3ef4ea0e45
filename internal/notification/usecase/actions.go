package usecase

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/notification"
)

func (uc *implUseCase) MarkRead(ctx context.Context, sc model.Scope, id string) error {
	return uc.flag(ctx, sc, id, func(st model.NotificationState) { st.Read[id] = true })
}

func (uc *implUseCase) Dismiss(ctx context.Context, sc model.Scope, id string) error {
	return uc.flag(ctx, sc, id, func(st model.NotificationState) { st.Dismissed[id] = true })
}

// flag applies set to the caller's state when id is one of their current notifications.
func (uc *implUseCase) flag(ctx context.Context, sc model.Scope, id string, set func(model.NotificationState)) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	visible, st, err := uc.reconciled(ctx, sc)
	if err != nil {
		return err
	}
	if !slices.ContainsFunc(visible, func(n model.Notification) bool { return n.ID == id }) {
		return notification.ErrNotFound
	}

	set(st)
	if err := uc.repo.SaveState(ctx, sc.UserID, st); err != nil {
		uc.l.Errorf(ctx, "notification.usecase.flag: SaveState: %v", err)
		return err
	}
	return nil
}

// MarkAllRead marks every current notification read and returns how many changed.
func (uc *implUseCase) MarkAllRead(ctx context.Context, sc model.Scope) (int, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	visible, st, err := uc.reconciled(ctx, sc)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, n := range visible {
		if !n.Read {
			st.Read[n.ID] = true
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}
	if err := uc.repo.SaveState(ctx, sc.UserID, st); err != nil {
		uc.l.Errorf(ctx, "notification.usecase.MarkAllRead: SaveState: %v", err)
		return 0, err
	}
	return changed, nil
}

func (uc *implUseCase) Test(ctx context.Context, sc model.Scope) (notification.TestOutput, error) {
	n := model.Notification{
		ID:        "test-" + uuid.NewString(),
		Type:      model.NotificationTypeTest,
		Title:     "Test Notification",
		Message:   "This is a test notification to verify your settings",
		Priority:  model.PriorityLow,
		CreatedAt: uc.now(),
	}
	uc.l.Infof(ctx, "notification.usecase.Test: user=%s id=%s", sc.UserID, n.ID)
	return notification.TestOutput{Notification: n}, nil
}
