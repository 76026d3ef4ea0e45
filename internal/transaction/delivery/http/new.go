package http

import (
	"transaction-coordinator/internal/transaction"
	"transaction-coordinator/pkg/log"
)

type handler struct {
	l  log.Logger
	uc transaction.UseCase
}

// New creates a new HTTP handler for the transaction domain.
func New(l log.Logger, uc transaction.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
