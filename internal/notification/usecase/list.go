package usecase

import (
	"context"
	"slices"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/notification"
	"transaction-coordinator/pkg/datemath"
)

// derive builds today's notifications for the caller from their visible tasks.
func (uc *implUseCase) derive(ctx context.Context, sc model.Scope) ([]model.Notification, datemath.Date, error) {
	settings, err := uc.repo.GetSettings(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "notification.usecase.derive: GetSettings: %v", err)
		return nil, datemath.Date{}, err
	}

	visible, err := uc.taskUC.Visible(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "notification.usecase.derive: Visible: %v", err)
		return nil, datemath.Date{}, err
	}

	var tasks []model.Task
	for _, tt := range visible {
		tasks = append(tasks, tt.Tasks...)
	}
	slices.SortStableFunc(tasks, func(a, b model.Task) int {
		if c := a.DueDate.Compare(b.DueDate); c != 0 {
			return c
		}
		return compareStrings(a.ID, b.ID)
	})

	today := uc.taskUC.Today()
	return notification.Derive(tasks, settings.ReminderDays, today, uc.now()), today, nil
}

// reconciled derives fresh notifications, merges the stored flags and persists the pruned state.
// Callers hold uc.mu.
func (uc *implUseCase) reconciled(ctx context.Context, sc model.Scope) ([]model.Notification, model.NotificationState, error) {
	fresh, _, err := uc.derive(ctx, sc)
	if err != nil {
		return nil, model.NotificationState{}, err
	}

	prev, err := uc.repo.GetState(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "notification.usecase.reconciled: GetState: %v", err)
		return nil, model.NotificationState{}, err
	}

	next, visible := notification.Reconcile(prev, fresh)
	if err := uc.repo.SaveState(ctx, sc.UserID, next); err != nil {
		uc.l.Errorf(ctx, "notification.usecase.reconciled: SaveState: %v", err)
		return nil, model.NotificationState{}, err
	}
	return visible, next, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input notification.ListInput) (notification.ListOutput, error) {
	uc.mu.Lock()
	visible, _, err := uc.reconciled(ctx, sc)
	uc.mu.Unlock()
	if err != nil {
		return notification.ListOutput{}, err
	}

	out := notification.ListOutput{
		Unread: notification.CountUnread(visible),
		Total:  len(visible),
	}
	if input.UnreadOnly {
		visible = slices.DeleteFunc(visible, func(n model.Notification) bool { return n.Read })
	}
	out.Notifications = visible
	return out, nil
}

func (uc *implUseCase) Digest(ctx context.Context, sc model.Scope) (notification.DigestOutput, error) {
	settings, err := uc.repo.GetSettings(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "notification.usecase.Digest: GetSettings: %v", err)
		return notification.DigestOutput{}, err
	}

	fresh, today, err := uc.derive(ctx, sc)
	if err != nil {
		return notification.DigestOutput{}, err
	}

	out := notification.DigestOutput{
		Date:      today,
		Enabled:   settings.DailyDigest,
		SendAt:    settings.DigestTime,
		Overdue:   []model.Notification{},
		DueToday:  []model.Notification{},
		Reminders: []model.Notification{},
	}
	for _, n := range fresh {
		switch n.Type {
		case model.NotificationTypeOverdue:
			out.Overdue = append(out.Overdue, n)
		case model.NotificationTypeDueToday:
			out.DueToday = append(out.DueToday, n)
		case model.NotificationTypeReminder:
			out.Reminders = append(out.Reminders, n)
		}
	}
	return out, nil
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
