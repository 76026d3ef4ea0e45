package model

import "time"

type NotificationType string

const (
	NotificationTypeOverdue  NotificationType = "overdue"
	NotificationTypeDueToday NotificationType = "due_today"
	NotificationTypeReminder NotificationType = "reminder"
	NotificationTypeTest     NotificationType = "test"
)

// Notification is a derived, ephemeral alert about one task.
type Notification struct {
	ID            string
	Type          NotificationType
	Title         string
	Message       string
	TaskID        string
	TransactionID string
	Priority      Priority
	CreatedAt     time.Time
	Read          bool
}

// NotificationSettings are the per-user alert preferences.
// Email/in-app toggles and the digest time are informational only.
type NotificationSettings struct {
	EmailNotifications bool
	InAppNotifications bool
	ReminderDays       []int
	DailyDigest        bool
	DigestTime         string
}

// NotificationState is the per-user read/dismissed bookkeeping, keyed by notification id.
type NotificationState struct {
	Read      map[string]bool
	Dismissed map[string]bool
}

// DefaultNotificationSettings is what a user gets before saving preferences.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		EmailNotifications: true,
		InAppNotifications: true,
		ReminderDays:       []int{3, 1},
		DailyDigest:        true,
		DigestTime:         "09:00",
	}
}
