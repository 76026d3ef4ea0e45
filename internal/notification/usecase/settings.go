package usecase

import (
	"context"
	"fmt"
	"slices"
	"time"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/notification"
)

const digestTimeLayout = "15:04"

func (uc *implUseCase) GetSettings(ctx context.Context, sc model.Scope) (notification.SettingsOutput, error) {
	s, err := uc.repo.GetSettings(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "notification.usecase.GetSettings: %v", err)
		return notification.SettingsOutput{}, err
	}
	return notification.SettingsOutput{Settings: s}, nil
}

func (uc *implUseCase) UpdateSettings(ctx context.Context, sc model.Scope, input notification.UpdateSettingsInput) (notification.SettingsOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.repo.GetSettings(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "notification.usecase.UpdateSettings: GetSettings: %v", err)
		return notification.SettingsOutput{}, err
	}

	if input.EmailNotifications != nil {
		s.EmailNotifications = *input.EmailNotifications
	}
	if input.InAppNotifications != nil {
		s.InAppNotifications = *input.InAppNotifications
	}
	if input.DailyDigest != nil {
		s.DailyDigest = *input.DailyDigest
	}
	if input.DigestTime != nil {
		if _, err := time.Parse(digestTimeLayout, *input.DigestTime); err != nil {
			return notification.SettingsOutput{}, fmt.Errorf("%w: digest time %q must be HH:MM", notification.ErrInvalidInput, *input.DigestTime)
		}
		s.DigestTime = *input.DigestTime
	}
	if input.ReminderDays != nil {
		days, err := normalizeReminderDays(input.ReminderDays)
		if err != nil {
			return notification.SettingsOutput{}, err
		}
		s.ReminderDays = days
	}

	saved, err := uc.repo.SaveSettings(ctx, sc.UserID, s)
	if err != nil {
		uc.l.Errorf(ctx, "notification.usecase.UpdateSettings: SaveSettings: %v", err)
		return notification.SettingsOutput{}, err
	}
	return notification.SettingsOutput{Settings: saved}, nil
}

// normalizeReminderDays validates the range, drops duplicates and sorts furthest first.
func normalizeReminderDays(in []int) ([]int, error) {
	days := slices.Clone(in)
	for _, d := range days {
		if d < notification.MinReminderDay || d > notification.MaxReminderDay {
			return nil, fmt.Errorf("%w: reminder day %d out of range %d..%d",
				notification.ErrInvalidInput, d, notification.MinReminderDay, notification.MaxReminderDay)
		}
	}
	slices.Sort(days)
	days = slices.Compact(days)
	if len(days) > notification.MaxReminderCount {
		return nil, fmt.Errorf("%w: at most %d reminder days", notification.ErrInvalidInput, notification.MaxReminderCount)
	}
	slices.Reverse(days)
	return days, nil
}
