package checklist

import (
	"fmt"
	"math"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/pkg/datemath"
)

type Service interface {
	// Catalog returns a copy of the loaded templates in catalog order.
	Catalog() []model.TaskTemplate

	// Template looks up one template by id.
	Template(id string) (model.TaskTemplate, bool)

	// Generate expands the catalog into the tasks of one transaction.
	Generate(in GenerateInput, today datemath.Date) ([]model.Task, error)

	// RefreshStatus re-derives every task status against today.
	RefreshStatus(tasks []model.Task, today datemath.Date) []model.Task

	// Filter keeps tasks matching f.
	Filter(tasks []model.Task, f Filter) []model.Task

	// GetStats calculates checklist statistics
	GetStats(tasks []model.Task) ChecklistStats

	// BlockedBy lists the incomplete dependencies of task within its own transaction.
	BlockedBy(task model.Task, siblings []model.Task) []string
}

type service struct {
	catalog []model.TaskTemplate
	index   map[string]int
}

// New loads catalog once. The slice is copied so later mutation by the caller has no effect.
func New(catalog []model.TaskTemplate) (Service, error) {
	if err := validateCatalog(catalog); err != nil {
		return nil, err
	}

	s := &service{
		catalog: make([]model.TaskTemplate, len(catalog)),
		index:   make(map[string]int, len(catalog)),
	}
	for i, tpl := range catalog {
		tpl.Dependencies = append([]string(nil), tpl.Dependencies...)
		tpl.TransactionTypes = append([]model.TransactionType(nil), tpl.TransactionTypes...)
		s.catalog[i] = tpl
		s.index[tpl.ID] = i
	}
	return s, nil
}

// TaskID is the deterministic identity of a template instantiated for a transaction.
func TaskID(transactionID, templateID string) string {
	return transactionID + "-" + templateID
}

func (s *service) Catalog() []model.TaskTemplate {
	out := make([]model.TaskTemplate, len(s.catalog))
	copy(out, s.catalog)
	return out
}

func (s *service) Template(id string) (model.TaskTemplate, bool) {
	i, ok := s.index[id]
	if !ok {
		return model.TaskTemplate{}, false
	}
	return s.catalog[i], true
}

func (s *service) Generate(in GenerateInput, today datemath.Date) ([]model.Task, error) {
	if in.TransactionID == "" {
		return nil, fmt.Errorf("%w: empty transaction id", ErrInvalidInput)
	}
	contract, err := datemath.ParseDate(in.ContractDate)
	if err != nil {
		return nil, fmt.Errorf("%w: contract date: %v", ErrInvalidInput, err)
	}

	tasks := make([]model.Task, 0, len(s.catalog))
	for _, tpl := range s.catalog {
		if !tpl.AppliesTo(in.TransactionType) {
			continue
		}

		id := TaskID(in.TransactionID, tpl.ID)
		t := model.Task{
			ID:            id,
			TransactionID: in.TransactionID,
			TemplateID:    tpl.ID,
			Title:         tpl.Title,
			Description:   tpl.Description,
			DueDate:       contract.AddDays(tpl.DaysFromContract),
			AssignedTo:    in.AssignedTo,
			Category:      tpl.Category,
			Priority:      tpl.Priority,
			IsRequired:    tpl.IsRequired,
			Dependencies:  append([]string(nil), tpl.Dependencies...),
			CreatedAt:     in.CreatedAt,
			UpdatedAt:     in.CreatedAt,
		}
		if st, ok := in.Seed[id]; ok {
			applyState(&t, st)
		}
		t.Status = t.StatusOn(today)
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func applyState(t *model.Task, st model.TaskState) {
	t.Completed = st.Completed
	t.InProgress = st.InProgress && !st.Completed
	t.Notes = st.Notes
	if st.Completed {
		t.CompletedAt = st.CompletedAt
		t.CompletedBy = st.CompletedBy
	}
	if !st.UpdatedAt.IsZero() {
		t.UpdatedAt = st.UpdatedAt
	}
}

func (s *service) RefreshStatus(tasks []model.Task, today datemath.Date) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		t.Status = t.StatusOn(today)
		out[i] = t
	}
	return out
}

func (s *service) Filter(tasks []model.Task, f Filter) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (s *service) GetStats(tasks []model.Task) ChecklistStats {
	total := len(tasks)
	if total == 0 {
		return ChecklistStats{}
	}

	var stats ChecklistStats
	stats.Total = total
	for _, t := range tasks {
		switch t.Status {
		case model.TaskStatusCompleted:
			stats.Completed++
		case model.TaskStatusOverdue:
			stats.Overdue++
		case model.TaskStatusInProgress:
			stats.InProgress++
		}
	}
	stats.Pending = total - stats.Completed
	stats.Progress = math.Round(float64(stats.Completed)/float64(total)*1000) / 10
	return stats
}

func (s *service) BlockedBy(task model.Task, siblings []model.Task) []string {
	if len(task.Dependencies) == 0 {
		return nil
	}

	done := make(map[string]bool, len(siblings))
	present := make(map[string]bool, len(siblings))
	for _, sib := range siblings {
		if sib.TransactionID != task.TransactionID {
			continue
		}
		present[sib.TemplateID] = true
		done[sib.TemplateID] = sib.Completed
	}

	var blocked []string
	for _, dep := range task.Dependencies {
		// a dependency not generated for this transaction type cannot block
		if present[dep] && !done[dep] {
			blocked = append(blocked, dep)
		}
	}
	return blocked
}
