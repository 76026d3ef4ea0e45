package repository

import "transaction-coordinator/internal/model"

// CreateTransactionOptions holds parameters for inserting a new Transaction.
// ID may be preset by fixtures; otherwise one is generated.
type CreateTransactionOptions struct {
	Transaction model.Transaction
}

// GetOneTransactionOptions holds filter parameters for fetching a single Transaction.
// All non-empty fields are applied as AND conditions.
type GetOneTransactionOptions struct {
	ID           string
	AgentID      string
	ContactEmail string
}

// ListTransactionsOptions holds filter and pagination parameters.
// Limit <= 0 returns every match.
type ListTransactionsOptions struct {
	Status          model.TransactionStatus
	TransactionType model.TransactionType
	AgentID         string
	ContactEmail    string
	Limit           int
	Offset          int
}

// UpdateTransactionOptions replaces the stored record with Transaction.
type UpdateTransactionOptions struct {
	Transaction model.Transaction
}
