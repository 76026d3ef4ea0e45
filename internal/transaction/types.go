package transaction

import "transaction-coordinator/internal/model"

// --- UseCase Inputs ---

type ContactInput struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Role          model.ContactRole
	Company       string
	LicenseNumber string
}

type CreateInput struct {
	Property        model.Property
	TransactionType model.TransactionType
	Status          model.TransactionStatus
	PurchasePrice   string
	ContractDate    string
	ClosingDate     string
	Contacts        []ContactInput
	AssignedAgent   string
	AssignedTC      string
	Notes           string
}

type ListInput struct {
	Status          model.TransactionStatus
	TransactionType model.TransactionType
	Limit           int
	Offset          int
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	ID            string
	Status        *model.TransactionStatus
	PurchasePrice *string
	ClosingDate   *string
	AssignedAgent *string
	AssignedTC    *string
	Notes         *string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Transaction model.Transaction
}

type ListOutput struct {
	Transactions []model.Transaction
	Total        int
	Limit        int
	Offset       int
}

type DetailOutput struct {
	Transaction model.Transaction
}

type UpdateOutput struct {
	Transaction model.Transaction
}
