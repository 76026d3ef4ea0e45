package transaction

import (
	"context"

	"transaction-coordinator/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Visible returns every transaction the scope may see, unpaginated.
	Visible(ctx context.Context, sc model.Scope) ([]model.Transaction, error)
}
