package dashboard

import (
	"context"

	"transaction-coordinator/internal/model"
)

// UseCase builds read-only reports over the caller's visible transactions.
type UseCase interface {
	// Dashboard dispatches on the caller's role.
	Dashboard(ctx context.Context, sc model.Scope) (DashboardOutput, error)

	// Pipeline groups transactions by stage. Staff only.
	Pipeline(ctx context.Context, sc model.Scope) (PipelineOutput, error)

	// Analytics reports volume, completion, stage and team figures. Staff only.
	Analytics(ctx context.Context, sc model.Scope, input AnalyticsInput) (AnalyticsOutput, error)
}
