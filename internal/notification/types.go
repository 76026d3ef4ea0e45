package notification

import (
	"transaction-coordinator/internal/model"
	"transaction-coordinator/pkg/datemath"
)

const (
	MinReminderDay   = 1
	MaxReminderDay   = 30
	MaxReminderCount = 10
)

// --- UseCase Inputs ---

type ListInput struct {
	UnreadOnly bool
}

// UpdateSettingsInput is a partial update; nil fields keep their value.
type UpdateSettingsInput struct {
	EmailNotifications *bool
	InAppNotifications *bool
	ReminderDays       []int
	DailyDigest        *bool
	DigestTime         *string
}

// --- UseCase Outputs ---

type ListOutput struct {
	Notifications []model.Notification
	Unread        int
	Total         int
}

type SettingsOutput struct {
	Settings model.NotificationSettings
}

// DigestOutput summarizes today's alerts. Dismissed alerts are still counted.
type DigestOutput struct {
	Date      datemath.Date
	Enabled   bool
	SendAt    string
	Overdue   []model.Notification
	DueToday  []model.Notification
	Reminders []model.Notification
}

type TestOutput struct {
	Notification model.Notification
}
