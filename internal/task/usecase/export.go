package usecase

import (
	"context"
	"fmt"
	"time"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/task"
	"transaction-coordinator/pkg/gcalendar"
	"transaction-coordinator/pkg/ical"
)

const maxReminderMinutes = 4 * 7 * 24 * 60

type exportRow struct {
	task    model.Task
	address string
}

// exportRows lists every visible task with its property address, earliest due first.
func (uc *implUseCase) exportRows(ctx context.Context, sc model.Scope) ([]exportRow, error) {
	visible, _, err := uc.allTasks(ctx, sc)
	if err != nil {
		return nil, err
	}

	var tasks []model.Task
	address := make(map[string]string, len(visible))
	for _, v := range visible {
		address[v.Transaction.ID] = v.Transaction.Property.Address
		tasks = append(tasks, v.Tasks...)
	}
	sortByDue(tasks)

	rows := make([]exportRow, len(tasks))
	for i, t := range tasks {
		rows[i] = exportRow{task: t, address: address[t.TransactionID]}
	}
	return rows, nil
}

func propertyLabel(address string) string {
	if address == "" {
		return "N/A"
	}
	return address
}

// ExportICS renders all visible deadlines as an iCalendar document.
func (uc *implUseCase) ExportICS(ctx context.Context, sc model.Scope, input task.ExportICSInput) (task.ExportICSOutput, error) {
	minutes := input.ReminderMinutes
	if minutes == 0 {
		minutes = uc.cfg.ReminderMinutes
	}
	if minutes < 0 || minutes > maxReminderMinutes {
		return task.ExportICSOutput{}, fmt.Errorf("%w: reminder must be between 1 and %d minutes", task.ErrInvalidInput, maxReminderMinutes)
	}

	rows, err := uc.exportRows(ctx, sc)
	if err != nil {
		return task.ExportICSOutput{}, err
	}

	events := make([]ical.Event, len(rows))
	for i, r := range rows {
		events[i] = ical.Event{
			UID:         fmt.Sprintf("%s@%s", r.task.ID, uc.cfg.UIDDomain),
			Date:        r.task.DueDate.In(time.UTC),
			Summary:     r.task.Title,
			Description: fmt.Sprintf("%s - Property: %s", r.task.Description, propertyLabel(r.address)),
			Category:    string(r.task.Category),
			Priority:    string(r.task.Priority),
			Completed:   r.task.Completed,
		}
	}

	content := ical.Encode(ical.Calendar{
		Stamp:           uc.now(),
		ReminderMinutes: minutes,
		Events:          events,
	})
	uc.l.Infof(ctx, "uc.ExportICS: %d events for user %s", len(events), sc.UserID)

	return task.ExportICSOutput{
		FileName:    ical.FileName,
		ContentType: ical.ContentType,
		Content:     content,
		EventCount:  len(events),
	}, nil
}

// ExportGoogle renders all visible deadlines as Google Calendar event resources.
func (uc *implUseCase) ExportGoogle(ctx context.Context, sc model.Scope) (task.ExportGoogleOutput, error) {
	rows, err := uc.exportRows(ctx, sc)
	if err != nil {
		return task.ExportGoogleOutput{}, err
	}

	inputs := make([]gcalendar.EventInput, len(rows))
	for i, r := range rows {
		inputs[i] = gcalendar.EventInput{
			ID:            r.task.ID,
			TransactionID: r.task.TransactionID,
			Title:         r.task.Title,
			Description:   r.task.Description,
			Address:       r.address,
			Category:      string(r.task.Category),
			Priority:      string(r.task.Priority),
			DueDate:       r.task.DueDate,
			Completed:     r.task.Completed,
			Overdue:       r.task.Status == model.TaskStatusOverdue,
		}
	}

	feed, errs := gcalendar.Feed(inputs, gcalendar.FeedOptions{
		Summary:         uc.cfg.CalendarName,
		TimeZone:        uc.dateMath.Location().String(),
		UIDDomain:       uc.cfg.UIDDomain,
		ReminderMinutes: uc.cfg.ReminderMinutes,
		GeneratedAt:     uc.now(),
	})
	for _, e := range errs {
		uc.l.Warnf(ctx, "uc.ExportGoogle: %v", e)
	}

	return task.ExportGoogleOutput{Feed: feed, Skipped: len(errs)}, nil
}
