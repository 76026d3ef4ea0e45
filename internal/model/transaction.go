package model

import (
	"time"

	"transaction-coordinator/pkg/money"
)

type TransactionType string

const (
	TransactionTypePurchase  TransactionType = "purchase"
	TransactionTypeSale      TransactionType = "sale"
	TransactionTypeRefinance TransactionType = "refinance"
	TransactionTypeLease     TransactionType = "lease"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypePurchase, TransactionTypeSale, TransactionTypeRefinance, TransactionTypeLease:
		return true
	}
	return false
}

type TransactionStatus string

const (
	TransactionStatusNew              TransactionStatus = "new"
	TransactionStatusUnderContract    TransactionStatus = "under_contract"
	TransactionStatusInspection       TransactionStatus = "inspection"
	TransactionStatusAppraisal        TransactionStatus = "appraisal"
	TransactionStatusFinancing        TransactionStatus = "financing"
	TransactionStatusFinalWalkthrough TransactionStatus = "final_walkthrough"
	TransactionStatusClosing          TransactionStatus = "closing"
	TransactionStatusClosed           TransactionStatus = "closed"
	TransactionStatusCancelled        TransactionStatus = "cancelled"
)

// TransactionStages lists the pipeline stages in board order.
var TransactionStages = []TransactionStatus{
	TransactionStatusNew,
	TransactionStatusUnderContract,
	TransactionStatusInspection,
	TransactionStatusAppraisal,
	TransactionStatusFinancing,
	TransactionStatusFinalWalkthrough,
	TransactionStatusClosing,
	TransactionStatusClosed,
	TransactionStatusCancelled,
}

func (s TransactionStatus) Valid() bool {
	for _, st := range TransactionStages {
		if st == s {
			return true
		}
	}
	return false
}

var stageLabels = map[TransactionStatus]string{
	TransactionStatusNew:              "New",
	TransactionStatusUnderContract:    "Under Contract",
	TransactionStatusInspection:       "Inspection",
	TransactionStatusAppraisal:        "Appraisal",
	TransactionStatusFinancing:        "Financing",
	TransactionStatusFinalWalkthrough: "Final Walkthrough",
	TransactionStatusClosing:          "Closing",
	TransactionStatusClosed:           "Closed",
	TransactionStatusCancelled:        "Cancelled",
}

// Label is the board column title of the stage.
func (s TransactionStatus) Label() string {
	if l, ok := stageLabels[s]; ok {
		return l
	}
	return string(s)
}

// Terminal reports whether no further status change is allowed.
func (s TransactionStatus) Terminal() bool {
	return s == TransactionStatusClosed || s == TransactionStatusCancelled
}

type PropertyType string

const (
	PropertyTypeSingleFamily PropertyType = "single_family"
	PropertyTypeCondo        PropertyType = "condo"
	PropertyTypeTownhouse    PropertyType = "townhouse"
	PropertyTypeMultiFamily  PropertyType = "multi_family"
	PropertyTypeCommercial   PropertyType = "commercial"
	PropertyTypeLand         PropertyType = "land"
)

func (p PropertyType) Valid() bool {
	switch p {
	case PropertyTypeSingleFamily, PropertyTypeCondo, PropertyTypeTownhouse,
		PropertyTypeMultiFamily, PropertyTypeCommercial, PropertyTypeLand:
		return true
	}
	return false
}

type Property struct {
	Address       string
	City          string
	State         string
	ZipCode       string
	County        string
	PropertyType  PropertyType
	SquareFootage int
	YearBuilt     int
	LotSize       string
	MLSNumber     string
}

type ContactRole string

const (
	ContactRoleBuyer        ContactRole = "buyer"
	ContactRoleSeller       ContactRole = "seller"
	ContactRoleBuyerAgent   ContactRole = "buyer_agent"
	ContactRoleSellerAgent  ContactRole = "seller_agent"
	ContactRoleLender       ContactRole = "lender"
	ContactRoleAttorney     ContactRole = "attorney"
	ContactRoleTitleCompany ContactRole = "title_company"
	ContactRoleInspector    ContactRole = "inspector"
	ContactRoleAppraiser    ContactRole = "appraiser"
)

type Contact struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Role          ContactRole
	Company       string
	LicenseNumber string
}

// Transaction is a real-estate deal that tasks are generated against.
// ContractDate and ClosingDate are YYYY-MM-DD calendar dates.
type Transaction struct {
	ID              string
	Property        Property
	TransactionType TransactionType
	Status          TransactionStatus
	PurchasePrice   money.Money
	ContractDate    string
	ClosingDate     string
	Contacts        []Contact
	AssignedAgent   string
	AssignedTC      string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasContactEmail reports whether email belongs to one of the transaction's parties.
func (t Transaction) HasContactEmail(email string) bool {
	for _, c := range t.Contacts {
		if c.Email != "" && c.Email == email {
			return true
		}
	}
	return false
}
