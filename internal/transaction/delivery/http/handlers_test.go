package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"transaction-coordinator/internal/middleware"
	"transaction-coordinator/internal/model"
	"transaction-coordinator/internal/transaction"
	"transaction-coordinator/pkg/log"
	"transaction-coordinator/pkg/money"
)

type mockUseCase struct {
	err       error
	lastInput transaction.CreateInput
	lastScope model.Scope
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, in transaction.CreateInput) (transaction.CreateOutput, error) {
	m.lastInput, m.lastScope = in, sc
	if m.err != nil {
		return transaction.CreateOutput{}, m.err
	}
	price, _ := money.Parse(in.PurchasePrice)
	return transaction.CreateOutput{Transaction: model.Transaction{ID: "tx-1", Property: in.Property, PurchasePrice: price}}, nil
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, in transaction.ListInput) (transaction.ListOutput, error) {
	return transaction.ListOutput{Limit: in.Limit}, m.err
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id string) (transaction.DetailOutput, error) {
	return transaction.DetailOutput{Transaction: model.Transaction{ID: id}}, m.err
}

func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, in transaction.UpdateInput) (transaction.UpdateOutput, error) {
	return transaction.UpdateOutput{Transaction: model.Transaction{ID: in.ID}}, m.err
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	return m.err
}

func (m *mockUseCase) Visible(ctx context.Context, sc model.Scope) ([]model.Transaction, error) {
	return nil, m.err
}

func newTestRouter(uc transaction.UseCase, sc *model.Scope) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if sc != nil {
		r.Use(func(c *gin.Context) { middleware.SetScope(c, *sc) })
	}
	h := New(log.NewNop(), uc)
	r.POST("/transactions", h.Create)
	r.GET("/transactions", h.List)
	r.GET("/transactions/:id", h.Detail)
	r.PATCH("/transactions/:id", h.Update)
	r.DELETE("/transactions/:id", h.Delete)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const createBody = `{
	"property": {"address": "123 Main St"},
	"transaction_type": "purchase",
	"purchase_price": "450000",
	"contract_date": "2024-01-01",
	"contacts": [{"first_name": "John", "email": "john.smith@email.com", "role": "buyer"}]
}`

func TestCreate(t *testing.T) {
	admin := model.Scope{SessionID: "s", UserID: "1", Role: model.Admin{}}

	t.Run("created", func(t *testing.T) {
		uc := &mockUseCase{}
		w := do(newTestRouter(uc, &admin), http.MethodPost, "/transactions", createBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("code = %d body = %s", w.Code, w.Body.String())
		}
		var body struct {
			Data struct {
				Transaction struct {
					ID            string `json:"id"`
					PurchasePrice struct {
						Display string `json:"display"`
					} `json:"purchase_price"`
				} `json:"transaction"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Data.Transaction.ID != "tx-1" || body.Data.Transaction.PurchasePrice.Display != "$450,000" {
			t.Errorf("body = %s", w.Body.String())
		}
		if uc.lastInput.Contacts[0].Role != model.ContactRoleBuyer || uc.lastScope.UserID != "1" {
			t.Errorf("input = %+v", uc.lastInput)
		}
	})

	t.Run("no session", func(t *testing.T) {
		w := do(newTestRouter(&mockUseCase{}, nil), http.MethodPost, "/transactions", createBody)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("code = %d", w.Code)
		}
	})

	t.Run("binding failure", func(t *testing.T) {
		w := do(newTestRouter(&mockUseCase{}, &admin), http.MethodPost, "/transactions", `{"transaction_type":"purchase"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("code = %d", w.Code)
		}
	})

	t.Run("bad contact role", func(t *testing.T) {
		body := strings.Replace(createBody, `"buyer"`, `"wizard"`, 1)
		w := do(newTestRouter(&mockUseCase{}, &admin), http.MethodPost, "/transactions", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("code = %d", w.Code)
		}
	})
}

func TestErrorMapping(t *testing.T) {
	admin := model.Scope{SessionID: "s", UserID: "1", Role: model.Admin{}}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", transaction.ErrNotFound, http.StatusNotFound},
		{"forbidden", transaction.ErrForbidden, http.StatusForbidden},
		{"invalid", transaction.ErrInvalidInput, http.StatusBadRequest},
		{"transition", transaction.ErrInvalidStatusTransition, http.StatusBadRequest},
		{"unknown", context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&mockUseCase{err: tt.err}, &admin)
			if w := do(r, http.MethodGet, "/transactions/x", ""); w.Code != tt.want {
				t.Errorf("detail code = %d, want %d", w.Code, tt.want)
			}
			if w := do(r, http.MethodDelete, "/transactions/x", ""); w.Code != tt.want {
				t.Errorf("delete code = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestList_DefaultLimit(t *testing.T) {
	admin := model.Scope{SessionID: "s", UserID: "1", Role: model.Admin{}}
	w := do(newTestRouter(&mockUseCase{}, &admin), http.MethodGet, "/transactions?limit=500", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"limit":20`) {
		t.Errorf("code = %d body = %s", w.Code, w.Body.String())
	}
}

func TestUpdate_PartialBody(t *testing.T) {
	admin := model.Scope{SessionID: "s", UserID: "1", Role: model.Admin{}}
	w := do(newTestRouter(&mockUseCase{}, &admin), http.MethodPatch, "/transactions/tx-9", `{"status":"closing"}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"id":"tx-9"`) {
		t.Errorf("code = %d body = %s", w.Code, w.Body.String())
	}
}
