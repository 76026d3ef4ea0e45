package usecase

import (
	"fmt"
	"strings"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/transaction"
	"transaction-coordinator/pkg/datemath"
	"transaction-coordinator/pkg/money"
)

// visibility returns the repository filters that restrict sc to its own transactions.
func visibility(sc model.Scope) (agentID, contactEmail string, err error) {
	switch r := sc.Role.(type) {
	case model.Admin:
		return "", "", nil
	case model.Agent:
		return r.AgentID, "", nil
	case model.Client:
		return "", normalizeEmail(r.Email), nil
	default:
		return "", "", transaction.ErrForbidden
	}
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func parsePrice(s string) (money.Money, error) {
	price, err := money.Parse(s)
	if err != nil {
		return money.Money{}, fmt.Errorf("%w: purchase price: %v", transaction.ErrInvalidInput, err)
	}
	if !price.IsPositive() {
		return money.Money{}, fmt.Errorf("%w: purchase price must be positive", transaction.ErrInvalidInput)
	}
	return price, nil
}

// validateDates checks both dates are YYYY-MM-DD and closing is not before contract.
// An empty closing date is allowed.
func validateDates(contract, closing string) error {
	c, err := datemath.ParseDate(contract)
	if err != nil {
		return fmt.Errorf("%w: contract date: %v", transaction.ErrInvalidInput, err)
	}
	if closing == "" {
		return nil
	}
	cl, err := datemath.ParseDate(closing)
	if err != nil {
		return fmt.Errorf("%w: closing date: %v", transaction.ErrInvalidInput, err)
	}
	if cl.Before(c) {
		return fmt.Errorf("%w: closing date %s is before contract date %s", transaction.ErrInvalidInput, closing, contract)
	}
	return nil
}

func validateCreate(in transaction.CreateInput) error {
	if strings.TrimSpace(in.Property.Address) == "" {
		return fmt.Errorf("%w: property address is required", transaction.ErrInvalidInput)
	}
	if in.Property.PropertyType != "" && !in.Property.PropertyType.Valid() {
		return fmt.Errorf("%w: property type %q", transaction.ErrInvalidInput, in.Property.PropertyType)
	}
	if !in.TransactionType.Valid() {
		return fmt.Errorf("%w: transaction type %q", transaction.ErrInvalidInput, in.TransactionType)
	}
	if in.Status != "" && !in.Status.Valid() {
		return fmt.Errorf("%w: status %q", transaction.ErrInvalidInput, in.Status)
	}
	for i, c := range in.Contacts {
		if strings.TrimSpace(c.FirstName) == "" && strings.TrimSpace(c.LastName) == "" {
			return fmt.Errorf("%w: contact %d has no name", transaction.ErrInvalidInput, i)
		}
	}
	return validateDates(in.ContractDate, in.ClosingDate)
}

func toContacts(in []transaction.ContactInput) []model.Contact {
	out := make([]model.Contact, len(in))
	for i, c := range in {
		out[i] = model.Contact{
			FirstName:     strings.TrimSpace(c.FirstName),
			LastName:      strings.TrimSpace(c.LastName),
			Email:         normalizeEmail(c.Email),
			Phone:         c.Phone,
			Role:          c.Role,
			Company:       c.Company,
			LicenseNumber: c.LicenseNumber,
		}
	}
	return out
}
