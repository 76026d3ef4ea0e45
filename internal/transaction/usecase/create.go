package usecase

import (
	"context"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/transaction"
	repo "transaction-coordinator/internal/transaction/repository"
)

// Create stores a new Transaction. Agents always own what they create.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input transaction.CreateInput) (transaction.CreateOutput, error) {
	var assignedAgent string
	switch r := sc.Role.(type) {
	case model.Admin:
		assignedAgent = input.AssignedAgent
	case model.Agent:
		assignedAgent = r.AgentID
	case model.Client:
		return transaction.CreateOutput{}, transaction.ErrForbidden
	default:
		return transaction.CreateOutput{}, transaction.ErrForbidden
	}

	if err := validateCreate(input); err != nil {
		return transaction.CreateOutput{}, err
	}
	price, err := parsePrice(input.PurchasePrice)
	if err != nil {
		return transaction.CreateOutput{}, err
	}

	status := input.Status
	if status == "" {
		status = model.TransactionStatusNew
	}

	t, err := uc.repo.CreateTransaction(ctx, repo.CreateTransactionOptions{
		Transaction: model.Transaction{
			Property:        input.Property,
			TransactionType: input.TransactionType,
			Status:          status,
			PurchasePrice:   price,
			ContractDate:    input.ContractDate,
			ClosingDate:     input.ClosingDate,
			Contacts:        toContacts(input.Contacts),
			AssignedAgent:   assignedAgent,
			AssignedTC:      input.AssignedTC,
			Notes:           input.Notes,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTransaction: %v", err)
		return transaction.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Create: transaction %s created by user %s", t.ID, sc.UserID)
	return transaction.CreateOutput{Transaction: t}, nil
}
