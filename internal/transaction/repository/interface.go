package repository

import (
	"context"

	"transaction-coordinator/internal/model"
)

// Repository is the composed interface for the transaction data store.
type Repository interface {
	TransactionRepository
}

// TransactionRepository defines all data access methods for the Transaction entity.
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, opt CreateTransactionOptions) (model.Transaction, error)
	GetOneTransaction(ctx context.Context, opt GetOneTransactionOptions) (model.Transaction, error)
	ListTransactions(ctx context.Context, opt ListTransactionsOptions) ([]model.Transaction, int, error)
	UpdateTransaction(ctx context.Context, opt UpdateTransactionOptions) (model.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}
