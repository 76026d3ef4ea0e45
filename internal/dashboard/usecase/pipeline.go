package usecase

import (
	"context"

	"transaction-coordinator/internal/dashboard"
	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/task"
	"transaction-coordinator/pkg/datemath"
	"transaction-coordinator/pkg/money"
)

func (uc *implUseCase) Pipeline(ctx context.Context, sc model.Scope) (dashboard.PipelineOutput, error) {
	if err := requireStaff(sc); err != nil {
		return dashboard.PipelineOutput{}, err
	}
	s, err := uc.load(ctx, sc)
	if err != nil {
		return dashboard.PipelineOutput{}, err
	}

	byStatus := make(map[model.TransactionStatus][]task.TransactionTasks)
	for _, tt := range s.items {
		byStatus[tt.Transaction.Status] = append(byStatus[tt.Transaction.Status], tt)
	}

	out := dashboard.PipelineOutput{Today: s.today, Stages: make([]dashboard.Stage, 0, len(model.TransactionStages))}
	for _, status := range model.TransactionStages {
		stage := dashboard.Stage{
			Status:     status,
			Label:      status.Label(),
			TotalValue: money.Zero(money.DefaultCurrency),
			Cards:      []dashboard.PipelineCard{},
		}
		for _, tt := range byStatus[status] {
			summary := uc.summarize(s, tt)
			stage.Count++
			stage.TotalValue = stage.TotalValue.Add(tt.Transaction.PurchasePrice)
			stage.Cards = append(stage.Cards, dashboard.PipelineCard{
				Summary:     summary,
				DaysInStage: max(datemath.DateOf(tt.Transaction.UpdatedAt).DaysUntil(s.today), 0),
				Priority:    cardPriority(tt.Transaction, summary.TasksOverdue, s.today),
			})
		}
		out.Stages = append(out.Stages, stage)
	}
	return out, nil
}

// cardPriority flags deals with late tasks or a closing within a week as high,
// a closing within a month as medium, and everything else as low.
func cardPriority(tx model.Transaction, overdue int, today datemath.Date) model.Priority {
	if tx.Status.Terminal() {
		return model.PriorityLow
	}
	if overdue > 0 {
		return model.PriorityHigh
	}
	closing, ok := parseDate(tx.ClosingDate)
	if !ok {
		return model.PriorityLow
	}
	switch days := today.DaysUntil(closing); {
	case days <= 7:
		return model.PriorityHigh
	case days <= 30:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}
