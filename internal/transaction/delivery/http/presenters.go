package http

import (
	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/transaction"
	"transaction-coordinator/pkg/money"
	"transaction-coordinator/pkg/response"
)

// --- Request DTOs ---

type propertyReq struct {
	Address       string `json:"address"        binding:"required,max=255"`
	City          string `json:"city"           binding:"max=100"`
	State         string `json:"state"          binding:"max=50"`
	ZipCode       string `json:"zip_code"       binding:"max=20"`
	County        string `json:"county"         binding:"max=100"`
	PropertyType  string `json:"property_type"`
	SquareFootage int    `json:"square_footage" binding:"gte=0"`
	YearBuilt     int    `json:"year_built"     binding:"gte=0"`
	LotSize       string `json:"lot_size"`
	MLSNumber     string `json:"mls_number"`
}

func (r propertyReq) toModel() model.Property {
	return model.Property{
		Address:       r.Address,
		City:          r.City,
		State:         r.State,
		ZipCode:       r.ZipCode,
		County:        r.County,
		PropertyType:  model.PropertyType(r.PropertyType),
		SquareFootage: r.SquareFootage,
		YearBuilt:     r.YearBuilt,
		LotSize:       r.LotSize,
		MLSNumber:     r.MLSNumber,
	}
}

type contactReq struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
	Role          string `json:"role"  binding:"omitempty,oneof=buyer seller buyer_agent seller_agent lender attorney title_company inspector appraiser"`
	Company       string `json:"company"`
	LicenseNumber string `json:"license_number"`
}

type createReq struct {
	Property        propertyReq  `json:"property"         binding:"required"`
	TransactionType string       `json:"transaction_type" binding:"required"`
	Status          string       `json:"status"`
	PurchasePrice   string       `json:"purchase_price"   binding:"required"`
	ContractDate    string       `json:"contract_date"    binding:"required"`
	ClosingDate     string       `json:"closing_date"`
	Contacts        []contactReq `json:"contacts"         binding:"dive"`
	AssignedAgent   string       `json:"assigned_agent"`
	AssignedTC      string       `json:"assigned_tc"`
	Notes           string       `json:"notes"            binding:"max=2000"`
}

func (r createReq) toInput() transaction.CreateInput {
	contacts := make([]transaction.ContactInput, len(r.Contacts))
	for i, c := range r.Contacts {
		contacts[i] = transaction.ContactInput{
			FirstName:     c.FirstName,
			LastName:      c.LastName,
			Email:         c.Email,
			Phone:         c.Phone,
			Role:          model.ContactRole(c.Role),
			Company:       c.Company,
			LicenseNumber: c.LicenseNumber,
		}
	}
	return transaction.CreateInput{
		Property:        r.Property.toModel(),
		TransactionType: model.TransactionType(r.TransactionType),
		Status:          model.TransactionStatus(r.Status),
		PurchasePrice:   r.PurchasePrice,
		ContractDate:    r.ContractDate,
		ClosingDate:     r.ClosingDate,
		Contacts:        contacts,
		AssignedAgent:   r.AssignedAgent,
		AssignedTC:      r.AssignedTC,
		Notes:           r.Notes,
	}
}

// ---

type listReq struct {
	Status          string `form:"status"`
	TransactionType string `form:"transaction_type"`
	Limit           int    `form:"limit"`
	Offset          int    `form:"offset"`
}

func (r listReq) toInput() transaction.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return transaction.ListInput{
		Status:          model.TransactionStatus(r.Status),
		TransactionType: model.TransactionType(r.TransactionType),
		Limit:           limit,
		Offset:          r.Offset,
	}
}

// ---

type updateReq struct {
	ID            string  `json:"-"` // populated from URI param
	Status        *string `json:"status"`
	PurchasePrice *string `json:"purchase_price"`
	ClosingDate   *string `json:"closing_date"`
	AssignedAgent *string `json:"assigned_agent"`
	AssignedTC    *string `json:"assigned_tc"`
	Notes         *string `json:"notes" binding:"omitempty,max=2000"`
}

func (r updateReq) toInput() transaction.UpdateInput {
	in := transaction.UpdateInput{
		ID:            r.ID,
		PurchasePrice: r.PurchasePrice,
		ClosingDate:   r.ClosingDate,
		AssignedAgent: r.AssignedAgent,
		AssignedTC:    r.AssignedTC,
		Notes:         r.Notes,
	}
	if r.Status != nil {
		st := model.TransactionStatus(*r.Status)
		in.Status = &st
	}
	return in
}

// --- Response DTOs ---

type propertyResp struct {
	Address       string `json:"address"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	ZipCode       string `json:"zip_code,omitempty"`
	County        string `json:"county,omitempty"`
	PropertyType  string `json:"property_type,omitempty"`
	SquareFootage int    `json:"square_footage,omitempty"`
	YearBuilt     int    `json:"year_built,omitempty"`
	LotSize       string `json:"lot_size,omitempty"`
	MLSNumber     string `json:"mls_number,omitempty"`
}

type contactResp struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Role          string `json:"role,omitempty"`
	Company       string `json:"company,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`
}

type transactionResp struct {
	ID              string            `json:"id"`
	Property        propertyResp      `json:"property"`
	TransactionType string            `json:"transaction_type"`
	Status          string            `json:"status"`
	PurchasePrice   money.Money       `json:"purchase_price"`
	ContractDate    string            `json:"contract_date"`
	ClosingDate     string            `json:"closing_date,omitempty"`
	Contacts        []contactResp     `json:"contacts"`
	AssignedAgent   string            `json:"assigned_agent,omitempty"`
	AssignedTC      string            `json:"assigned_tc,omitempty"`
	Notes           string            `json:"notes,omitempty"`
	CreatedAt       response.DateTime `json:"created_at"`
	UpdatedAt       response.DateTime `json:"updated_at"`
}

func newTransactionResp(t model.Transaction) transactionResp {
	contacts := make([]contactResp, len(t.Contacts))
	for i, c := range t.Contacts {
		contacts[i] = contactResp{
			ID:            c.ID,
			FirstName:     c.FirstName,
			LastName:      c.LastName,
			Email:         c.Email,
			Phone:         c.Phone,
			Role:          string(c.Role),
			Company:       c.Company,
			LicenseNumber: c.LicenseNumber,
		}
	}
	p := t.Property
	return transactionResp{
		ID: t.ID,
		Property: propertyResp{
			Address:       p.Address,
			City:          p.City,
			State:         p.State,
			ZipCode:       p.ZipCode,
			County:        p.County,
			PropertyType:  string(p.PropertyType),
			SquareFootage: p.SquareFootage,
			YearBuilt:     p.YearBuilt,
			LotSize:       p.LotSize,
			MLSNumber:     p.MLSNumber,
		},
		TransactionType: string(t.TransactionType),
		Status:          string(t.Status),
		PurchasePrice:   t.PurchasePrice,
		ContractDate:    t.ContractDate,
		ClosingDate:     t.ClosingDate,
		Contacts:        contacts,
		AssignedAgent:   t.AssignedAgent,
		AssignedTC:      t.AssignedTC,
		Notes:           t.Notes,
		CreatedAt:       response.DateTime(t.CreatedAt),
		UpdatedAt:       response.DateTime(t.UpdatedAt),
	}
}

type createResp struct {
	Transaction transactionResp `json:"transaction"`
}

func (h *handler) newCreateResp(out transaction.CreateOutput) createResp {
	return createResp{Transaction: newTransactionResp(out.Transaction)}
}

type listResp struct {
	Transactions []transactionResp `json:"transactions"`
	Total        int               `json:"total"`
	Limit        int               `json:"limit"`
	Offset       int               `json:"offset"`
}

func (h *handler) newListResp(out transaction.ListOutput) listResp {
	items := make([]transactionResp, len(out.Transactions))
	for i, t := range out.Transactions {
		items[i] = newTransactionResp(t)
	}
	return listResp{
		Transactions: items,
		Total:        out.Total,
		Limit:        out.Limit,
		Offset:       out.Offset,
	}
}

type detailResp struct {
	Transaction transactionResp `json:"transaction"`
}

func (h *handler) newDetailResp(out transaction.DetailOutput) detailResp {
	return detailResp{Transaction: newTransactionResp(out.Transaction)}
}

type updateResp struct {
	Transaction transactionResp `json:"transaction"`
}

func (h *handler) newUpdateResp(out transaction.UpdateOutput) updateResp {
	return updateResp{Transaction: newTransactionResp(out.Transaction)}
}
