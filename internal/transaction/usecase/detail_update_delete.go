package usecase

import (
	"context"
	"fmt"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/transaction"
	repo "transaction-coordinator/internal/transaction/repository"
)

// getVisible loads one transaction, hiding those outside sc behind ErrNotFound.
func (uc *implUseCase) getVisible(ctx context.Context, sc model.Scope, id string) (model.Transaction, error) {
	agentID, email, err := visibility(sc)
	if err != nil {
		return model.Transaction{}, err
	}

	t, err := uc.repo.GetOneTransaction(ctx, repo.GetOneTransactionOptions{
		ID:           id,
		AgentID:      agentID,
		ContactEmail: email,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getVisible GetOneTransaction: %v", err)
		return model.Transaction{}, err
	}
	if t.ID == "" {
		return model.Transaction{}, transaction.ErrNotFound
	}
	return t, nil
}

// Detail retrieves a single Transaction by ID. Returns ErrNotFound when not found or not visible.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (transaction.DetailOutput, error) {
	t, err := uc.getVisible(ctx, sc, id)
	if err != nil {
		return transaction.DetailOutput{}, err
	}
	return transaction.DetailOutput{Transaction: t}, nil
}

// Update applies a partial update. Only admins may reassign the agent.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input transaction.UpdateInput) (transaction.UpdateOutput, error) {
	existing, err := uc.getVisible(ctx, sc, input.ID)
	if err != nil {
		return transaction.UpdateOutput{}, err
	}

	isAdmin := false
	switch sc.Role.(type) {
	case model.Admin:
		isAdmin = true
	case model.Agent:
	case model.Client:
		return transaction.UpdateOutput{}, transaction.ErrForbidden
	default:
		return transaction.UpdateOutput{}, transaction.ErrForbidden
	}

	t := existing
	if input.Status != nil {
		next := *input.Status
		if !next.Valid() {
			return transaction.UpdateOutput{}, fmt.Errorf("%w: status %q", transaction.ErrInvalidInput, next)
		}
		if existing.Status.Terminal() && next != existing.Status {
			return transaction.UpdateOutput{}, fmt.Errorf("%w: %s is final", transaction.ErrInvalidStatusTransition, existing.Status)
		}
		t.Status = next
	}
	if input.PurchasePrice != nil {
		price, err := parsePrice(*input.PurchasePrice)
		if err != nil {
			return transaction.UpdateOutput{}, err
		}
		t.PurchasePrice = price
	}
	if input.ClosingDate != nil {
		if err := validateDates(t.ContractDate, *input.ClosingDate); err != nil {
			return transaction.UpdateOutput{}, err
		}
		t.ClosingDate = *input.ClosingDate
	}
	if input.AssignedAgent != nil && *input.AssignedAgent != existing.AssignedAgent {
		if !isAdmin {
			return transaction.UpdateOutput{}, transaction.ErrForbidden
		}
		t.AssignedAgent = *input.AssignedAgent
	}
	if input.AssignedTC != nil {
		t.AssignedTC = *input.AssignedTC
	}
	if input.Notes != nil {
		t.Notes = *input.Notes
	}

	updated, err := uc.repo.UpdateTransaction(ctx, repo.UpdateTransactionOptions{Transaction: t})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTransaction: %v", err)
		return transaction.UpdateOutput{}, err
	}
	if updated.ID == "" {
		return transaction.UpdateOutput{}, transaction.ErrNotFound
	}
	return transaction.UpdateOutput{Transaction: updated}, nil
}

// Delete removes a Transaction by ID. Admin only.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	switch sc.Role.(type) {
	case model.Admin:
	case model.Agent, model.Client:
		return transaction.ErrForbidden
	default:
		return transaction.ErrForbidden
	}

	if _, err := uc.getVisible(ctx, sc, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteTransaction(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTransaction: %v", err)
		return err
	}
	if err := uc.states.DeleteTransactionStates(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTransactionStates: %v", err)
		return err
	}
	uc.l.Infof(ctx, "uc.Delete: transaction %s deleted by user %s", id, sc.UserID)
	return nil
}
