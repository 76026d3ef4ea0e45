// Package fixture builds the demo office's transactions and checklist progress.
// Everything is derived from a seed and the current day, so a restart with the
// same seed on the same day shows the same board.
package fixture

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"transaction-coordinator/internal/checklist"
	"transaction-coordinator/internal/model"
	taskRepo "transaction-coordinator/internal/task/repository"
	txRepo "transaction-coordinator/internal/transaction/repository"
	"transaction-coordinator/pkg/datemath"
	"transaction-coordinator/pkg/log"
	"transaction-coordinator/pkg/money"
)

const (
	pastDueCompletion  = 0.85
	upcomingCompletion = 0.1
	daysToClose        = 45
)

// Demo is a ready-to-load set of transactions plus their task states.
type Demo struct {
	Transactions []model.Transaction
	States       map[string][]model.TaskState
}

type listing struct {
	id           string
	address      string
	city         string
	zip          string
	county       string
	propertyType model.PropertyType
	sqft         int
	yearBuilt    int
	price        int64
	txType       model.TransactionType
	status       model.TransactionStatus
	agentID      string
	agentName    string
	contractAgo  int
	contacts     []model.Contact
}

var listings = []listing{
	{
		id: "1", address: "123 Main St", city: "Philadelphia", zip: "19103", county: "Philadelphia",
		propertyType: model.PropertyTypeSingleFamily, sqft: 1850, yearBuilt: 1995,
		price: 450_000, txType: model.TransactionTypePurchase, status: model.TransactionStatusNew,
		agentID: "2", agentName: "Sarah Wilson", contractAgo: 2,
		contacts: []model.Contact{
			{FirstName: "John", LastName: "Smith", Email: "john.smith@email.com", Phone: "(215) 555-0134", Role: model.ContactRoleBuyer},
			{FirstName: "Jane", LastName: "Smith", Email: "jane.smith@email.com", Role: model.ContactRoleBuyer},
			{FirstName: "Karen", LastName: "Ortiz", Company: "Keystone Mortgage", Role: model.ContactRoleLender},
		},
	},
	{
		id: "2", address: "456 Oak Avenue", city: "Pittsburgh", zip: "15213", county: "Allegheny",
		propertyType: model.PropertyTypeTownhouse, sqft: 1600, yearBuilt: 2004,
		price: 325_000, txType: model.TransactionTypeSale, status: model.TransactionStatusUnderContract,
		agentID: "4", agentName: "Tom Davis", contractAgo: 12,
		contacts: []model.Contact{
			{FirstName: "Mike", LastName: "Johnson", Email: "mike.johnson@email.com", Role: model.ContactRoleSeller},
		},
	},
	{
		id: "3", address: "789 Pine Road", city: "Allentown", zip: "18102", county: "Lehigh",
		propertyType: model.PropertyTypeCondo, sqft: 1200, yearBuilt: 2012,
		price: 275_000, txType: model.TransactionTypePurchase, status: model.TransactionStatusInspection,
		agentID: "5", agentName: "Emily Chen", contractAgo: 20,
		contacts: []model.Contact{
			{FirstName: "Lisa", LastName: "Brown", Email: "lisa.brown@email.com", Role: model.ContactRoleBuyer},
			{FirstName: "Dan", LastName: "Price", Company: "Lehigh Home Inspections", Role: model.ContactRoleInspector},
		},
	},
	{
		id: "4", address: "321 Elm Street", city: "Erie", zip: "16501", county: "Erie",
		propertyType: model.PropertyTypeSingleFamily, sqft: 2100, yearBuilt: 1978,
		price: 195_000, txType: model.TransactionTypePurchase, status: model.TransactionStatusFinancing,
		agentID: "6", agentName: "Michael Lee", contractAgo: 35,
		contacts: []model.Contact{
			{FirstName: "Robert", LastName: "Taylor", Email: "robert.taylor@email.com", Role: model.ContactRoleBuyer},
		},
	},
	{
		id: "5", address: "654 Maple Drive", city: "Reading", zip: "19601", county: "Berks",
		propertyType: model.PropertyTypeMultiFamily, sqft: 2800, yearBuilt: 1962,
		price: 380_000, txType: model.TransactionTypeSale, status: model.TransactionStatusClosed,
		agentID: "7", agentName: "Jennifer Kim", contractAgo: 60,
		contacts: []model.Contact{
			{FirstName: "David", LastName: "Wilson", Email: "david.wilson@email.com", Role: model.ContactRoleSeller},
			{FirstName: "Amy", LastName: "Garcia", Company: "Berks Title", Role: model.ContactRoleTitleCompany},
		},
	},
}

// Build lays the demo listings out around today. Closed deals have every task
// completed; open deals complete most past-due tasks and a few upcoming ones.
func Build(svc checklist.Service, today datemath.Date, now time.Time, seed uint64) (Demo, error) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	demo := Demo{States: make(map[string][]model.TaskState, len(listings))}

	for _, ls := range listings {
		contract := today.AddDays(-ls.contractAgo)
		tx := model.Transaction{
			ID: ls.id,
			Property: model.Property{
				Address:       ls.address,
				City:          ls.city,
				State:         "PA",
				ZipCode:       ls.zip,
				County:        ls.county,
				PropertyType:  ls.propertyType,
				SquareFootage: ls.sqft,
				YearBuilt:     ls.yearBuilt,
				MLSNumber:     fmt.Sprintf("PA%07d", 1000000+rng.IntN(9000000)),
			},
			TransactionType: ls.txType,
			Status:          ls.status,
			PurchasePrice:   money.New(decimal.NewFromInt(ls.price), money.DefaultCurrency),
			ContractDate:    contract.String(),
			ClosingDate:     contract.AddDays(daysToClose).String(),
			Contacts:        slices.Clone(ls.contacts),
			AssignedAgent:   ls.agentID,
			CreatedAt:       contract.In(time.UTC).Add(9 * time.Hour),
		}

		tasks, err := svc.Generate(checklist.GenerateInput{
			TransactionID:   tx.ID,
			TransactionType: tx.TransactionType,
			ContractDate:    tx.ContractDate,
			AssignedTo:      ls.agentName,
			CreatedAt:       tx.CreatedAt,
		}, today)
		if err != nil {
			return Demo{}, fmt.Errorf("fixture.Build: %s: %w", tx.ID, err)
		}

		var states []model.TaskState
		for _, t := range tasks {
			if !completes(rng, tx.Status, t.DueDate, today) {
				continue
			}
			at := t.DueDate.In(time.UTC).Add(time.Duration(9+rng.IntN(8)) * time.Hour)
			if at.After(now) {
				at = now
			}
			states = append(states, model.TaskState{
				TaskID:      t.ID,
				Completed:   true,
				CompletedAt: &at,
				CompletedBy: ls.agentName,
				UpdatedAt:   at,
			})
		}

		demo.Transactions = append(demo.Transactions, tx)
		demo.States[tx.ID] = states
	}
	return demo, nil
}

func completes(rng *rand.Rand, status model.TransactionStatus, due, today datemath.Date) bool {
	if status == model.TransactionStatusClosed {
		return true
	}
	if due.Before(today) {
		return rng.Float64() < pastDueCompletion
	}
	return rng.Float64() < upcomingCompletion
}

// Load writes the demo into the stores. Transaction ids must not already exist.
func Load(ctx context.Context, l log.Logger, txs txRepo.Repository, states taskRepo.StateRepository, demo Demo) error {
	for _, tx := range demo.Transactions {
		if _, err := txs.CreateTransaction(ctx, txRepo.CreateTransactionOptions{Transaction: tx}); err != nil {
			l.Errorf(ctx, "fixture.Load: CreateTransaction %s: %v", tx.ID, err)
			return err
		}
		for _, st := range demo.States[tx.ID] {
			if _, err := states.SaveState(ctx, taskRepo.SaveStateOptions{TransactionID: tx.ID, State: st}); err != nil {
				l.Errorf(ctx, "fixture.Load: SaveState %s: %v", st.TaskID, err)
				return err
			}
		}
	}
	l.Infof(ctx, "fixture.Load: seeded %d demo transactions", len(demo.Transactions))
	return nil
}
