package http

import (
	"transaction-coordinator/internal/dashboard"
	"transaction-coordinator/pkg/log"
)

type handler struct {
	l  log.Logger
	uc dashboard.UseCase
}

// New creates a new HTTP handler for dashboards and reports.
func New(l log.Logger, uc dashboard.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
