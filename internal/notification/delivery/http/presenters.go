package http

import (
	"time"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/notification"
	"transaction-coordinator/pkg/datemath"
)

// --- Request DTOs ---

type listReq struct {
	UnreadOnly bool `form:"unread_only"`
}

type idURI struct {
	ID string `uri:"id" binding:"required"`
}

type updateSettingsReq struct {
	EmailNotifications *bool   `json:"email_notifications"`
	InAppNotifications *bool   `json:"in_app_notifications"`
	ReminderDays       []int   `json:"reminder_days"        binding:"omitempty,max=10,dive,min=1,max=30"`
	DailyDigest        *bool   `json:"daily_digest"`
	DigestTime         *string `json:"digest_time"`
}

func (r updateSettingsReq) toInput() notification.UpdateSettingsInput {
	return notification.UpdateSettingsInput{
		EmailNotifications: r.EmailNotifications,
		InAppNotifications: r.InAppNotifications,
		ReminderDays:       r.ReminderDays,
		DailyDigest:        r.DailyDigest,
		DigestTime:         r.DigestTime,
	}
}

// --- Response DTOs ---

type notificationResp struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	TaskID        string    `json:"task_id,omitempty"`
	TransactionID string    `json:"transaction_id,omitempty"`
	Priority      string    `json:"priority"`
	CreatedAt     time.Time `json:"created_at"`
	Read          bool      `json:"read"`
}

func newNotificationResp(n model.Notification) notificationResp {
	return notificationResp{
		ID:            n.ID,
		Type:          string(n.Type),
		Title:         n.Title,
		Message:       n.Message,
		TaskID:        n.TaskID,
		TransactionID: n.TransactionID,
		Priority:      string(n.Priority),
		CreatedAt:     n.CreatedAt,
		Read:          n.Read,
	}
}

func newNotificationResps(ns []model.Notification) []notificationResp {
	out := make([]notificationResp, len(ns))
	for i, n := range ns {
		out[i] = newNotificationResp(n)
	}
	return out
}

type listResp struct {
	Notifications []notificationResp `json:"notifications"`
	Unread        int                `json:"unread"`
	Total         int                `json:"total"`
}

func (h *handler) newListResp(out notification.ListOutput) listResp {
	return listResp{
		Notifications: newNotificationResps(out.Notifications),
		Unread:        out.Unread,
		Total:         out.Total,
	}
}

type markAllReadResp struct {
	Marked int `json:"marked"`
}

type settingsResp struct {
	EmailNotifications bool   `json:"email_notifications"`
	InAppNotifications bool   `json:"in_app_notifications"`
	ReminderDays       []int  `json:"reminder_days"`
	DailyDigest        bool   `json:"daily_digest"`
	DigestTime         string `json:"digest_time"`
}

func (h *handler) newSettingsResp(out notification.SettingsOutput) settingsResp {
	s := out.Settings
	days := s.ReminderDays
	if days == nil {
		days = []int{}
	}
	return settingsResp{
		EmailNotifications: s.EmailNotifications,
		InAppNotifications: s.InAppNotifications,
		ReminderDays:       days,
		DailyDigest:        s.DailyDigest,
		DigestTime:         s.DigestTime,
	}
}

type digestCountsResp struct {
	Overdue   int `json:"overdue"`
	DueToday  int `json:"due_today"`
	Reminders int `json:"reminders"`
}

type digestResp struct {
	Date      datemath.Date      `json:"date"`
	Enabled   bool               `json:"enabled"`
	SendAt    string             `json:"send_at"`
	Counts    digestCountsResp   `json:"counts"`
	Overdue   []notificationResp `json:"overdue"`
	DueToday  []notificationResp `json:"due_today"`
	Reminders []notificationResp `json:"reminders"`
}

func (h *handler) newDigestResp(out notification.DigestOutput) digestResp {
	return digestResp{
		Date:    out.Date,
		Enabled: out.Enabled,
		SendAt:  out.SendAt,
		Counts: digestCountsResp{
			Overdue:   len(out.Overdue),
			DueToday:  len(out.DueToday),
			Reminders: len(out.Reminders),
		},
		Overdue:   newNotificationResps(out.Overdue),
		DueToday:  newNotificationResps(out.DueToday),
		Reminders: newNotificationResps(out.Reminders),
	}
}

type testResp struct {
	Notification notificationResp `json:"notification"`
	Delivered    bool             `json:"delivered"`
}
