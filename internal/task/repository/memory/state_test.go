package memory_test

import (
	"context"
	"testing"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/task/repository"
	"transaction-coordinator/internal/task/repository/memory"
)

func TestStateRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	saved, err := repo.SaveState(ctx, repository.SaveStateOptions{
		TransactionID: "1",
		State:         model.TaskState{TaskID: "1-earnest-money", Completed: true},
	})
	if err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	if saved.UpdatedAt.IsZero() {
		t.Errorf("UpdatedAt not set")
	}

	states, _ := repo.ListStates(ctx, "1")
	if len(states) != 1 || !states["1-earnest-money"].Completed {
		t.Errorf("states = %+v", states)
	}
	// returned map is a copy
	delete(states, "1-earnest-money")
	if again, _ := repo.ListStates(ctx, "1"); len(again) != 1 {
		t.Errorf("store mutated through returned map")
	}

	if _, err := repo.SaveState(ctx, repository.SaveStateOptions{
		TransactionID: "2",
		State:         model.TaskState{TaskID: "2-earnest-money"},
	}); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	_ = repo.DeleteTransactionStates(ctx, "1")
	if states, _ := repo.ListStates(ctx, "1"); len(states) != 0 {
		t.Errorf("states after delete = %+v", states)
	}
	if other, _ := repo.ListStates(ctx, "2"); len(other) != 1 {
		t.Errorf("other transaction states = %+v", other)
	}
}
