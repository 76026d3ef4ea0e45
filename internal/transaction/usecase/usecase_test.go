package usecase_test

import (
	"context"
	"errors"
	"testing"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/transaction"
	"transaction-coordinator/internal/transaction/repository/memory"
	"transaction-coordinator/internal/transaction/usecase"
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

type mockStateCleaner struct {
	deleted []string
	err     error
}

func (m *mockStateCleaner) DeleteTransactionStates(ctx context.Context, transactionID string) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, transactionID)
	return nil
}

var (
	admin  = model.Scope{SessionID: "s1", UserID: "1", Role: model.Admin{}}
	sarah  = model.Scope{SessionID: "s2", UserID: "2", Role: model.Agent{AgentID: "2"}}
	tom    = model.Scope{SessionID: "s3", UserID: "4", Role: model.Agent{AgentID: "4"}}
	john   = model.Scope{SessionID: "s4", UserID: "3", Role: model.Client{ClientID: "3", Email: "john.smith@email.com", AgentID: "2"}}
	nobody = model.Scope{SessionID: "s5", UserID: "9"}
)

func validInput() transaction.CreateInput {
	return transaction.CreateInput{
		Property:        model.Property{Address: "123 Main St", City: "Philadelphia", State: "PA"},
		TransactionType: model.TransactionTypePurchase,
		PurchasePrice:   "$450,000",
		ContractDate:    "2024-01-01",
		ClosingDate:     "2024-01-31",
		Contacts: []transaction.ContactInput{
			{FirstName: "John", LastName: "Smith", Email: " John.Smith@email.com ", Role: model.ContactRoleBuyer},
		},
	}
}

func newUC() transaction.UseCase {
	return usecase.New(memory.New(&mockLogger{}), &mockStateCleaner{}, &mockLogger{})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("agent owns created transaction", func(t *testing.T) {
		uc := newUC()
		in := validInput()
		in.AssignedAgent = "999"
		out, err := uc.Create(ctx, sarah, in)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		tx := out.Transaction
		if tx.ID == "" || tx.AssignedAgent != "2" || tx.Status != model.TransactionStatusNew {
			t.Errorf("tx = %+v", tx)
		}
		if tx.PurchasePrice.Display() != "$450,000" {
			t.Errorf("price = %s", tx.PurchasePrice.Display())
		}
		if tx.Contacts[0].Email != "john.smith@email.com" || tx.Contacts[0].ID == "" {
			t.Errorf("contact = %+v", tx.Contacts[0])
		}
	})

	t.Run("client forbidden", func(t *testing.T) {
		if _, err := newUC().Create(ctx, john, validInput()); !errors.Is(err, transaction.ErrForbidden) {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("no role forbidden", func(t *testing.T) {
		if _, err := newUC().Create(ctx, nobody, validInput()); !errors.Is(err, transaction.ErrForbidden) {
			t.Errorf("err = %v", err)
		}
	})

	invalid := []struct {
		name   string
		mutate func(*transaction.CreateInput)
	}{
		{"bad contract date", func(in *transaction.CreateInput) { in.ContractDate = "2024-02-30" }},
		{"closing before contract", func(in *transaction.CreateInput) { in.ClosingDate = "2023-12-31" }},
		{"unknown type", func(in *transaction.CreateInput) { in.TransactionType = "barter" }},
		{"unknown status", func(in *transaction.CreateInput) { in.Status = "limbo" }},
		{"zero price", func(in *transaction.CreateInput) { in.PurchasePrice = "0" }},
		{"garbage price", func(in *transaction.CreateInput) { in.PurchasePrice = "lots" }},
		{"missing address", func(in *transaction.CreateInput) { in.Property.Address = " " }},
		{"nameless contact", func(in *transaction.CreateInput) { in.Contacts[0].FirstName, in.Contacts[0].LastName = "", "" }},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			if _, err := newUC().Create(ctx, admin, in); !errors.Is(err, transaction.ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestVisibility(t *testing.T) {
	ctx := context.Background()
	uc := newUC()

	mine, _ := uc.Create(ctx, sarah, validInput())
	other := validInput()
	other.Contacts = nil
	theirs, _ := uc.Create(ctx, tom, other)

	tests := []struct {
		name string
		sc   model.Scope
		want int
	}{
		{"admin sees all", admin, 2},
		{"agent sees own", sarah, 1},
		{"other agent sees own", tom, 1},
		{"client sees deals they are party to", john, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.List(ctx, tt.sc, transaction.ListInput{})
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if out.Total != tt.want {
				t.Errorf("Total = %d, want %d", out.Total, tt.want)
			}
		})
	}

	if _, err := uc.Detail(ctx, sarah, theirs.Transaction.ID); !errors.Is(err, transaction.ErrNotFound) {
		t.Errorf("agent detail of foreign tx: err = %v", err)
	}
	if _, err := uc.Detail(ctx, john, mine.Transaction.ID); err != nil {
		t.Errorf("client detail of own tx: %v", err)
	}
	if _, err := uc.Detail(ctx, john, theirs.Transaction.ID); !errors.Is(err, transaction.ErrNotFound) {
		t.Errorf("client detail of foreign tx: err = %v", err)
	}
}

func TestList_FiltersAndPaging(t *testing.T) {
	ctx := context.Background()
	uc := newUC()
	for i := 0; i < 3; i++ {
		_, _ = uc.Create(ctx, admin, validInput())
	}
	sale := validInput()
	sale.TransactionType = model.TransactionTypeSale
	_, _ = uc.Create(ctx, admin, sale)

	out, _ := uc.List(ctx, admin, transaction.ListInput{TransactionType: model.TransactionTypeSale})
	if out.Total != 1 {
		t.Errorf("sale total = %d", out.Total)
	}
	out, _ = uc.List(ctx, admin, transaction.ListInput{Limit: 2, Offset: 3})
	if out.Total != 4 || len(out.Transactions) != 1 {
		t.Errorf("page = %d of %d", len(out.Transactions), out.Total)
	}
	if _, err := uc.List(ctx, admin, transaction.ListInput{Status: "limbo"}); !errors.Is(err, transaction.ErrInvalidInput) {
		t.Errorf("err = %v", err)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	uc := newUC()
	created, _ := uc.Create(ctx, sarah, validInput())
	id := created.Transaction.ID

	status := model.TransactionStatusInspection
	notes := "inspection booked"
	out, err := uc.Update(ctx, sarah, transaction.UpdateInput{ID: id, Status: &status, Notes: &notes})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if out.Transaction.Status != status || out.Transaction.Notes != notes {
		t.Errorf("tx = %+v", out.Transaction)
	}

	reassign := "4"
	if _, err := uc.Update(ctx, sarah, transaction.UpdateInput{ID: id, AssignedAgent: &reassign}); !errors.Is(err, transaction.ErrForbidden) {
		t.Errorf("agent reassign err = %v", err)
	}
	if _, err := uc.Update(ctx, john, transaction.UpdateInput{ID: id, Notes: &notes}); !errors.Is(err, transaction.ErrForbidden) {
		t.Errorf("client update err = %v", err)
	}

	badClosing := "2023-06-01"
	if _, err := uc.Update(ctx, admin, transaction.UpdateInput{ID: id, ClosingDate: &badClosing}); !errors.Is(err, transaction.ErrInvalidInput) {
		t.Errorf("closing err = %v", err)
	}

	closed := model.TransactionStatusClosed
	if _, err := uc.Update(ctx, admin, transaction.UpdateInput{ID: id, Status: &closed}); err != nil {
		t.Fatalf("close: %v", err)
	}
	reopen := model.TransactionStatusNew
	if _, err := uc.Update(ctx, admin, transaction.UpdateInput{ID: id, Status: &reopen}); !errors.Is(err, transaction.ErrInvalidStatusTransition) {
		t.Errorf("reopen err = %v", err)
	}

	if _, err := uc.Update(ctx, admin, transaction.UpdateInput{ID: "missing", Notes: &notes}); !errors.Is(err, transaction.ErrNotFound) {
		t.Errorf("missing err = %v", err)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	cleaner := &mockStateCleaner{}
	uc := usecase.New(memory.New(&mockLogger{}), cleaner, &mockLogger{})
	created, _ := uc.Create(ctx, sarah, validInput())
	id := created.Transaction.ID

	if err := uc.Delete(ctx, sarah, id); !errors.Is(err, transaction.ErrForbidden) {
		t.Errorf("agent delete err = %v", err)
	}
	if len(cleaner.deleted) != 0 {
		t.Errorf("states dropped on forbidden delete: %v", cleaner.deleted)
	}
	if err := uc.Delete(ctx, admin, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(cleaner.deleted) != 1 || cleaner.deleted[0] != id {
		t.Errorf("dropped states = %v, want [%s]", cleaner.deleted, id)
	}
	if err := uc.Delete(ctx, admin, id); !errors.Is(err, transaction.ErrNotFound) {
		t.Errorf("second delete err = %v", err)
	}
	visible, _ := uc.Visible(ctx, admin)
	if len(visible) != 0 {
		t.Errorf("visible = %d", len(visible))
	}
}

func TestDelete_StateCleanupError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	uc := usecase.New(memory.New(&mockLogger{}), &mockStateCleaner{err: boom}, &mockLogger{})
	created, _ := uc.Create(ctx, sarah, validInput())

	if err := uc.Delete(ctx, admin, created.Transaction.ID); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}
