package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"transaction-coordinator/internal/dashboard"
	"transaction-coordinator/internal/middleware"
	"transaction-coordinator/internal/model"
	"transaction-coordinator/pkg/datemath"
	"transaction-coordinator/pkg/log"
	"transaction-coordinator/pkg/money"
)

type mockUseCase struct {
	err       error
	lastInput dashboard.AnalyticsInput
}

var today = datemath.NewDate(2024, 1, 5)

func (m *mockUseCase) Dashboard(ctx context.Context, sc model.Scope) (dashboard.DashboardOutput, error) {
	walk := datemath.NewDate(2024, 1, 30)
	return dashboard.DashboardOutput{
		Role:  model.RoleKindClient,
		Today: today,
		Client: &dashboard.ClientView{Transactions: []dashboard.ClientTransaction{{
			Summary: dashboard.TransactionSummary{
				Transaction: model.Transaction{ID: "tx-1", Status: model.TransactionStatusUnderContract},
				AgentName:   "Sarah Wilson",
				Progress:    15.4,
			},
			FinalWalkthrough: &walk,
		}}},
	}, m.err
}

func (m *mockUseCase) Pipeline(ctx context.Context, sc model.Scope) (dashboard.PipelineOutput, error) {
	return dashboard.PipelineOutput{Stages: []dashboard.Stage{{
		Status:     model.TransactionStatusNew,
		Label:      "New",
		Count:      2,
		TotalValue: money.New(decimal.NewFromInt(1_250_000), money.DefaultCurrency),
	}}}, m.err
}

func (m *mockUseCase) Analytics(ctx context.Context, sc model.Scope, in dashboard.AnalyticsInput) (dashboard.AnalyticsOutput, error) {
	m.lastInput = in
	return dashboard.AnalyticsOutput{
		Monthly: []dashboard.MonthlyVolume{{Month: datemath.NewDate(2024, 1, 1), Transactions: 3}},
	}, m.err
}

func newTestRouter(uc dashboard.UseCase, sc *model.Scope) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if sc != nil {
		r.Use(func(c *gin.Context) { middleware.SetScope(c, *sc) })
	}
	h := New(log.NewNop(), uc)
	r.GET("/dashboard", h.Dashboard)
	r.GET("/pipeline", h.Pipeline)
	r.GET("/analytics", h.Analytics)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

var admin = model.Scope{SessionID: "s", UserID: "1", Role: model.Admin{}}

func TestDashboard(t *testing.T) {
	w := get(newTestRouter(&mockUseCase{}, &admin), "/dashboard")
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{`"role":"client"`, `"stage":"Under Contract"`, `"final_walkthrough":"2024-01-30"`, `"agent_name":"Sarah Wilson"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %s: %s", want, body)
		}
	}
	if strings.Contains(body, `"admin"`) {
		t.Errorf("unexpected admin view: %s", body)
	}

	if w := get(newTestRouter(&mockUseCase{}, nil), "/dashboard"); w.Code != http.StatusUnauthorized {
		t.Errorf("no session code = %d", w.Code)
	}
}

func TestPipeline(t *testing.T) {
	w := get(newTestRouter(&mockUseCase{}, &admin), "/pipeline")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"total_millions":"$1.3M"`) {
		t.Errorf("code = %d body = %s", w.Code, w.Body.String())
	}

	w = get(newTestRouter(&mockUseCase{err: dashboard.ErrForbidden}, &admin), "/pipeline")
	if w.Code != http.StatusForbidden {
		t.Errorf("forbidden code = %d", w.Code)
	}
}

func TestAnalytics(t *testing.T) {
	tests := []struct {
		name string
		path string
		err  error
		want int
	}{
		{"defaults", "/analytics", nil, http.StatusOK},
		{"explicit", "/analytics?months=12&weeks=8", nil, http.StatusOK},
		{"months too large", "/analytics?months=30", nil, http.StatusBadRequest},
		{"weeks not a number", "/analytics?weeks=four", nil, http.StatusBadRequest},
		{"use case rejects", "/analytics", dashboard.ErrInvalidInput, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(newTestRouter(&mockUseCase{err: tt.err}, &admin), tt.path)
			if w.Code != tt.want {
				t.Errorf("code = %d, want %d body = %s", w.Code, tt.want, w.Body.String())
			}
		})
	}

	uc := &mockUseCase{}
	w := get(newTestRouter(uc, &admin), "/analytics?months=12&weeks=8")
	if uc.lastInput.Months != 12 || uc.lastInput.Weeks != 8 {
		t.Errorf("input = %+v", uc.lastInput)
	}
	if !strings.Contains(w.Body.String(), `"month":"2024-01"`) || !strings.Contains(w.Body.String(), `"label":"Jan"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}
