package http

import (
	"transaction-coordinator/internal/auth"
	"transaction-coordinator/pkg/log"
)

type handler struct {
	l  log.Logger
	uc auth.UseCase
}

// New creates a new HTTP handler for sessions and the directory.
func New(l log.Logger, uc auth.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
