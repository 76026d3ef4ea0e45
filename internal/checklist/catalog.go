package checklist

import (
	"fmt"

	"transaction-coordinator/internal/model"
)

var (
	purchaseOnly    = []model.TransactionType{model.TransactionTypePurchase}
	purchaseAndSale = []model.TransactionType{model.TransactionTypePurchase, model.TransactionTypeSale}
)

// DefaultCatalog returns the standard residential closing checklist.
// A fresh slice is returned on every call.
func DefaultCatalog() []model.TaskTemplate {
	return []model.TaskTemplate{
		{
			ID: "contract-review", Title: "Contract Review",
			Description: "Review purchase agreement and all addenda",
			Category:    model.TaskCategoryContract, Priority: model.PriorityHigh,
			DaysFromContract: 1, IsRequired: true, TransactionTypes: purchaseAndSale,
		},
		{
			ID: "earnest-money", Title: "Earnest Money Deposit",
			Description: "Collect and deposit earnest money",
			Category:    model.TaskCategoryContract, Priority: model.PriorityHigh,
			DaysFromContract: 3, IsRequired: true, TransactionTypes: purchaseOnly,
		},
		{
			ID: "schedule-inspection", Title: "Schedule Home Inspection",
			Description: "Schedule professional home inspection",
			Category:    model.TaskCategoryInspection, Priority: model.PriorityHigh,
			DaysFromContract: 5, IsRequired: true, TransactionTypes: purchaseOnly,
			Dependencies: []string{"contract-review"},
		},
		{
			ID: "inspection-contingency", Title: "Inspection Contingency Deadline",
			Description: "Buyer must complete inspection and provide notice",
			Category:    model.TaskCategoryInspection, Priority: model.PriorityHigh,
			DaysFromContract: 10, IsRequired: true, TransactionTypes: purchaseOnly,
		},
		{
			ID: "loan-application", Title: "Submit Loan Application",
			Description: "Complete and submit mortgage application",
			Category:    model.TaskCategoryFinancing, Priority: model.PriorityHigh,
			DaysFromContract: 3, IsRequired: true, TransactionTypes: purchaseOnly,
		},
		{
			ID: "loan-approval", Title: "Loan Approval Deadline",
			Description: "Obtain final loan approval",
			Category:    model.TaskCategoryFinancing, Priority: model.PriorityHigh,
			DaysFromContract: 21, IsRequired: true, TransactionTypes: purchaseOnly,
		},
		{
			ID: "order-appraisal", Title: "Order Appraisal",
			Description: "Schedule property appraisal",
			Category:    model.TaskCategoryAppraisal, Priority: model.PriorityMedium,
			DaysFromContract: 7, IsRequired: true, TransactionTypes: purchaseOnly,
			Dependencies: []string{"loan-application"},
		},
		{
			ID: "appraisal-review", Title: "Appraisal Review",
			Description: "Review appraisal report",
			Category:    model.TaskCategoryAppraisal, Priority: model.PriorityMedium,
			DaysFromContract: 18, IsRequired: true, TransactionTypes: purchaseOnly,
		},
		{
			ID: "title-search", Title: "Order Title Search",
			Description: "Initiate title search and examination",
			Category:    model.TaskCategoryTitle, Priority: model.PriorityMedium,
			DaysFromContract: 3, IsRequired: true, TransactionTypes: purchaseAndSale,
		},
		{
			ID: "homeowners-insurance", Title: "Obtain Homeowners Insurance",
			Description: "Secure homeowners insurance policy",
			Category:    model.TaskCategoryInsurance, Priority: model.PriorityMedium,
			DaysFromContract: 14, IsRequired: true, TransactionTypes: purchaseOnly,
		},
		{
			ID: "final-walkthrough", Title: "Final Walkthrough",
			Description: "Conduct final property walkthrough",
			Category:    model.TaskCategoryClosing, Priority: model.PriorityHigh,
			DaysFromContract: 29, IsRequired: true, TransactionTypes: purchaseOnly,
		},
		{
			ID: "closing-documents", Title: "Prepare Closing Documents",
			Description: "Prepare all closing documentation",
			Category:    model.TaskCategoryClosing, Priority: model.PriorityHigh,
			DaysFromContract: 27, IsRequired: true, TransactionTypes: purchaseAndSale,
		},
		{
			ID: "schedule-closing", Title: "Schedule Closing",
			Description: "Coordinate closing date with all parties",
			Category:    model.TaskCategoryClosing, Priority: model.PriorityHigh,
			DaysFromContract: 25, IsRequired: true, TransactionTypes: purchaseAndSale,
		},
	}
}

// validateCatalog checks ids are unique and dependencies resolve.
func validateCatalog(catalog []model.TaskTemplate) error {
	seen := make(map[string]struct{}, len(catalog))
	for _, tpl := range catalog {
		if tpl.ID == "" {
			return fmt.Errorf("%w: template with empty id", ErrInvalidCatalog)
		}
		if _, dup := seen[tpl.ID]; dup {
			return fmt.Errorf("%w: duplicate template id %q", ErrInvalidCatalog, tpl.ID)
		}
		if !tpl.Category.Valid() {
			return fmt.Errorf("%w: template %q has unknown category %q", ErrInvalidCatalog, tpl.ID, tpl.Category)
		}
		seen[tpl.ID] = struct{}{}
	}
	for _, tpl := range catalog {
		for _, dep := range tpl.Dependencies {
			if _, ok := seen[dep]; !ok {
				return fmt.Errorf("%w: template %q depends on unknown %q", ErrInvalidCatalog, tpl.ID, dep)
			}
		}
	}
	return nil
}
