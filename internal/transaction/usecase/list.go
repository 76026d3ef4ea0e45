package usecase

import (
	"context"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/transaction"
	repo "transaction-coordinator/internal/transaction/repository"
)

// List returns a paginated list of the transactions visible to sc.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input transaction.ListInput) (transaction.ListOutput, error) {
	agentID, email, err := visibility(sc)
	if err != nil {
		return transaction.ListOutput{}, err
	}
	if input.Status != "" && !input.Status.Valid() {
		return transaction.ListOutput{}, transaction.ErrInvalidInput
	}
	if input.TransactionType != "" && !input.TransactionType.Valid() {
		return transaction.ListOutput{}, transaction.ErrInvalidInput
	}

	items, total, err := uc.repo.ListTransactions(ctx, repo.ListTransactionsOptions{
		Status:          input.Status,
		TransactionType: input.TransactionType,
		AgentID:         agentID,
		ContactEmail:    email,
		Limit:           input.Limit,
		Offset:          input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTransactions: %v", err)
		return transaction.ListOutput{}, err
	}

	return transaction.ListOutput{
		Transactions: items,
		Total:        total,
		Limit:        input.Limit,
		Offset:       input.Offset,
	}, nil
}

// Visible returns every transaction sc may see.
func (uc *implUseCase) Visible(ctx context.Context, sc model.Scope) ([]model.Transaction, error) {
	agentID, email, err := visibility(sc)
	if err != nil {
		return nil, err
	}

	items, _, err := uc.repo.ListTransactions(ctx, repo.ListTransactionsOptions{
		AgentID:      agentID,
		ContactEmail: email,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Visible ListTransactions: %v", err)
		return nil, err
	}
	return items, nil
}
