package usecase_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"transaction-coordinator/internal/checklist"
	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/notification"
	notifRepo "transaction-coordinator/internal/notification/repository/memory"
	"transaction-coordinator/internal/notification/usecase"
	taskRepo "transaction-coordinator/internal/task/repository/memory"
	taskUC "transaction-coordinator/internal/task/usecase"
	"transaction-coordinator/internal/transaction"
	txRepo "transaction-coordinator/internal/transaction/repository/memory"
	txUC "transaction-coordinator/internal/transaction/usecase"
	"transaction-coordinator/pkg/datemath"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

var (
	admin  = model.Scope{SessionID: "s1", UserID: "1", Role: model.Admin{}}
	sarah  = model.Scope{SessionID: "s2", UserID: "2", Role: model.Agent{AgentID: "2"}}
	tom    = model.Scope{SessionID: "s4", UserID: "4", Role: model.Agent{AgentID: "4"}}
	client = model.Scope{SessionID: "s3", UserID: "3", Role: model.Client{ClientID: "3", Email: "john.smith@email.com", AgentID: "2"}}
)

type fixture struct {
	uc    notification.UseCase
	txID  string
	clock *time.Time
}

// setup creates one purchase contracted 2024-01-01 and sets the clock to 2024-01-05.
// Four tasks are then overdue, schedule-inspection is due in 1 day and order-appraisal in 3.
func setup(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	l := &mockLogger{}

	states := taskRepo.New()
	transactions := txUC.New(txRepo.New(l), states, l)
	created, err := transactions.Create(ctx, sarah, transaction.CreateInput{
		Property:        model.Property{Address: "123 Main St"},
		TransactionType: model.TransactionTypePurchase,
		PurchasePrice:   "450000",
		ContractDate:    "2024-01-01",
		Contacts:        []transaction.ContactInput{{FirstName: "John", Email: "john.smith@email.com"}},
	})
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}

	svc, err := checklist.New(checklist.DefaultCatalog())
	if err != nil {
		t.Fatalf("checklist.New: %v", err)
	}
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	now := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	f := fixture{txID: created.Transaction.ID, clock: &now}
	clock := func() time.Time { return *f.clock }

	tasks := taskUC.New(l, transactions, svc, states, parser, taskUC.Config{
		UpcomingWindowDays: 7,
		ReminderMinutes:    60,
		UIDDomain:          "transactiontc.com",
		Clock:              clock,
	})
	f.uc = usecase.New(l, notifRepo.New(model.DefaultNotificationSettings()), tasks, clock)
	return f
}

func countByType(ns []model.Notification) map[model.NotificationType]int {
	out := map[model.NotificationType]int{}
	for _, n := range ns {
		out[n.Type]++
	}
	return out
}

func TestList(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	out, err := f.uc.List(ctx, sarah, notification.ListInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	got := countByType(out.Notifications)
	if got[model.NotificationTypeOverdue] != 4 || got[model.NotificationTypeReminder] != 2 || got[model.NotificationTypeDueToday] != 0 {
		t.Errorf("by type = %v", got)
	}
	if out.Unread != 6 || out.Total != 6 {
		t.Errorf("unread = %d total = %d", out.Unread, out.Total)
	}

	if out.Notifications[0].ID != "overdue-"+f.txID+"-contract-review" {
		t.Errorf("first = %s, want earliest due first", out.Notifications[0].ID)
	}

	var reminder model.Notification
	for _, n := range out.Notifications {
		if n.ID == "reminder-1-"+f.txID+"-schedule-inspection" {
			reminder = n
		}
	}
	if reminder.Priority != model.PriorityMedium || reminder.TransactionID != f.txID {
		t.Errorf("reminder = %+v", reminder)
	}
}

func TestListVisibility(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	tests := []struct {
		name string
		sc   model.Scope
		want int
	}{
		{"admin sees all", admin, 6},
		{"client on the deal", client, 6},
		{"other agent", tom, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := f.uc.List(ctx, tt.sc, notification.ListInput{})
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if out.Total != tt.want {
				t.Errorf("total = %d, want %d", out.Total, tt.want)
			}
		})
	}
}

func TestDueTodayExclusive(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	*f.clock = time.Date(2024, 1, 6, 8, 0, 0, 0, time.UTC)

	out, err := f.uc.List(ctx, sarah, notification.ListInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	id := f.txID + "-schedule-inspection"
	matches := 0
	for _, n := range out.Notifications {
		if n.TaskID == id {
			matches++
			if n.Type != model.NotificationTypeDueToday || n.ID != "today-"+id {
				t.Errorf("notification = %+v", n)
			}
		}
	}
	if matches != 1 {
		t.Errorf("schedule-inspection produced %d notifications", matches)
	}
}

func TestReadStateSurvivesRegeneration(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	id := "overdue-" + f.txID + "-earnest-money"

	if err := f.uc.MarkRead(ctx, sarah, id); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	out, _ := f.uc.List(ctx, sarah, notification.ListInput{})
	if out.Unread != 5 {
		t.Errorf("unread = %d", out.Unread)
	}

	unread, _ := f.uc.List(ctx, sarah, notification.ListInput{UnreadOnly: true})
	for _, n := range unread.Notifications {
		if n.ID == id {
			t.Error("read notification listed as unread")
		}
	}

	// state is per user
	other, _ := f.uc.List(ctx, admin, notification.ListInput{})
	if other.Unread != 6 {
		t.Errorf("admin unread = %d", other.Unread)
	}
}

func TestDismiss(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	id := "reminder-3-" + f.txID + "-order-appraisal"

	if err := f.uc.Dismiss(ctx, sarah, id); err != nil {
		t.Fatalf("Dismiss: %v", err)
	}
	out, _ := f.uc.List(ctx, sarah, notification.ListInput{})
	if out.Total != 5 {
		t.Errorf("total = %d", out.Total)
	}
	if err := f.uc.Dismiss(ctx, sarah, id); !errors.Is(err, notification.ErrNotFound) {
		t.Errorf("second dismiss err = %v", err)
	}
	if err := f.uc.MarkRead(ctx, sarah, "overdue-missing"); !errors.Is(err, notification.ErrNotFound) {
		t.Errorf("unknown id err = %v", err)
	}
}

func TestMarkAllRead(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	n, err := f.uc.MarkAllRead(ctx, sarah)
	if err != nil || n != 6 {
		t.Fatalf("MarkAllRead = %d, %v", n, err)
	}
	n, _ = f.uc.MarkAllRead(ctx, sarah)
	if n != 0 {
		t.Errorf("second MarkAllRead = %d", n)
	}
	out, _ := f.uc.List(ctx, sarah, notification.ListInput{})
	if out.Unread != 0 {
		t.Errorf("unread = %d", out.Unread)
	}
}

func TestMarkRead_Concurrent(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	before, err := f.uc.List(ctx, sarah, notification.ListInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	var wg sync.WaitGroup
	for _, n := range before.Notifications {
		wg.Add(2)
		go func(id string) {
			defer wg.Done()
			if err := f.uc.MarkRead(ctx, sarah, id); err != nil {
				t.Errorf("MarkRead %s: %v", id, err)
			}
		}(n.ID)
		go func() {
			defer wg.Done()
			if _, err := f.uc.List(ctx, sarah, notification.ListInput{}); err != nil {
				t.Errorf("List: %v", err)
			}
		}()
	}
	wg.Wait()

	after, _ := f.uc.List(ctx, sarah, notification.ListInput{})
	if after.Total != before.Total || after.Unread != 0 {
		t.Errorf("total = %d unread = %d, want %d and 0", after.Total, after.Unread, before.Total)
	}
}

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()
	off := false
	at := "07:30"
	bad := "7.30"

	tests := []struct {
		name    string
		input   notification.UpdateSettingsInput
		wantErr bool
		check   func(t *testing.T, s model.NotificationSettings)
	}{
		{
			name:  "normalizes reminder days",
			input: notification.UpdateSettingsInput{ReminderDays: []int{1, 7, 3, 7}},
			check: func(t *testing.T, s model.NotificationSettings) {
				if len(s.ReminderDays) != 3 || s.ReminderDays[0] != 7 || s.ReminderDays[2] != 1 {
					t.Errorf("reminder days = %v", s.ReminderDays)
				}
			},
		},
		{
			name:  "partial update keeps other fields",
			input: notification.UpdateSettingsInput{DailyDigest: &off, DigestTime: &at},
			check: func(t *testing.T, s model.NotificationSettings) {
				if s.DailyDigest || s.DigestTime != "07:30" || !s.EmailNotifications || len(s.ReminderDays) != 2 {
					t.Errorf("settings = %+v", s)
				}
			},
		},
		{name: "day out of range", input: notification.UpdateSettingsInput{ReminderDays: []int{0}}, wantErr: true},
		{name: "day too far", input: notification.UpdateSettingsInput{ReminderDays: []int{31}}, wantErr: true},
		{name: "bad digest time", input: notification.UpdateSettingsInput{DigestTime: &bad}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			out, err := f.uc.UpdateSettings(ctx, sarah, tt.input)
			if tt.wantErr {
				if !errors.Is(err, notification.ErrInvalidInput) {
					t.Fatalf("err = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateSettings: %v", err)
			}
			tt.check(t, out.Settings)

			got, _ := f.uc.GetSettings(ctx, sarah)
			tt.check(t, got.Settings)
		})
	}
}

func TestSettingsDriveReminders(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	// order-appraisal is 3 days out, inspection-contingency 6
	if _, err := f.uc.UpdateSettings(ctx, sarah, notification.UpdateSettingsInput{ReminderDays: []int{6}}); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	out, _ := f.uc.List(ctx, sarah, notification.ListInput{})
	got := countByType(out.Notifications)
	if got[model.NotificationTypeReminder] != 1 {
		t.Fatalf("reminders = %d", got[model.NotificationTypeReminder])
	}
	for _, n := range out.Notifications {
		if n.Type == model.NotificationTypeReminder && n.ID != "reminder-6-"+f.txID+"-inspection-contingency" {
			t.Errorf("reminder id = %s", n.ID)
		}
	}
}

func TestDigest(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	out, err := f.uc.Digest(ctx, sarah)
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if out.Date != datemath.NewDate(2024, 1, 5) || !out.Enabled || out.SendAt != "09:00" {
		t.Errorf("digest header = %+v", out)
	}
	if len(out.Overdue) != 4 || len(out.DueToday) != 0 || len(out.Reminders) != 2 {
		t.Errorf("digest = %d/%d/%d", len(out.Overdue), len(out.DueToday), len(out.Reminders))
	}
}

func TestTest(t *testing.T) {
	f := setup(t)
	out, err := f.uc.Test(context.Background(), sarah)
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	n := out.Notification
	if n.Type != model.NotificationTypeTest || !strings.HasPrefix(n.ID, "test-") || n.Title != "Test Notification" {
		t.Errorf("notification = %+v", n)
	}
	list, _ := f.uc.List(context.Background(), sarah, notification.ListInput{})
	if list.Total != 6 {
		t.Errorf("test notification leaked into list: total = %d", list.Total)
	}
}
