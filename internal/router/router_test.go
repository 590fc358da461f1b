package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GregMSThompson/finance-insights/internal/handlers"
	"github.com/GregMSThompson/finance-insights/internal/middleware"
	"github.com/GregMSThompson/finance-insights/internal/response"
	"github.com/GregMSThompson/finance-insights/internal/services"
	"github.com/GregMSThompson/finance-insights/internal/store"
	"github.com/GregMSThompson/finance-insights/pkg/logger"
)

// newTestServer wires the real services over the in-memory store.
func newTestServer() http.Handler {
	mem := store.NewMemoryStore()
	return NewRouter(&handlers.Deps{
		Log:             logger.New("error", logger.NewTestHandler),
		ResponseHandler: response.New(),
		Verifier:        middleware.DevVerifier{},
		CORSOrigins:     []string{"https://app.example"},
		AnalysisSvc:     services.NewAnalysisService(mem),
		InsightSvc:      services.NewInsightService(nil, mem, mem, 0),
		GoalSvc:         services.NewGoalService(mem, mem),
		TransactionSvc:  services.NewTransactionService(mem, mem),
	})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body)).WithContext(context.Background())
	req.Header.Set("Authorization", "Bearer user-1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHealthzIsPublic(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestServer().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestRoutesRequireToken(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestServer().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/analysis", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/analysis", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr := httptest.NewRecorder()
	newTestServer().ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example" {
		t.Fatalf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestImportThenAnalyze(t *testing.T) {
	h := newTestServer()

	rr := do(t, h, http.MethodPost, "/transactions/expenses",
		`{"expenses":[{"amount":40,"category":"food","date":"2024-03-01"},{"amount":60,"category":"Shopping","date":"2024-03-02"}]}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("import expenses status = %d: %s", rr.Code, rr.Body.String())
	}
	rr = do(t, h, http.MethodPost, "/transactions/income",
		`{"income":[{"amount":400,"source":"Salary","date":"2024-03-01"}]}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("import income status = %d: %s", rr.Code, rr.Body.String())
	}

	rr = do(t, h, http.MethodGet, "/analysis", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("analysis status = %d: %s", rr.Code, rr.Body.String())
	}
	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Overview struct {
				TotalExpenses string  `json:"totalExpenses"`
				SavingsRate   float64 `json:"savingsRate"`
			} `json:"overview"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Data.Overview.TotalExpenses != "100" || body.Data.Overview.SavingsRate != 75 {
		t.Fatalf("unexpected overview: %+v", body.Data.Overview)
	}

	rr = do(t, h, http.MethodGet, "/analysis/insights", "")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "Spending Analysis") {
		t.Fatalf("insights status = %d: %s", rr.Code, rr.Body.String())
	}
}

func TestGoalLifecycle(t *testing.T) {
	h := newTestServer()

	rr := do(t, h, http.MethodPost, "/goals", `{"name":"Car","kind":"car","target":5000}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rr.Code, rr.Body.String())
	}
	var created struct {
		Data struct {
			GoalID string `json:"goalId"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&created); err != nil || created.Data.GoalID == "" {
		t.Fatalf("decode created goal: %v", err)
	}

	rr = do(t, h, http.MethodGet, "/goals/"+created.Data.GoalID+"/plan", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("plan status = %d: %s", rr.Code, rr.Body.String())
	}

	rr = do(t, h, http.MethodDelete, "/goals/"+created.Data.GoalID, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rr.Code)
	}
	rr = do(t, h, http.MethodGet, "/goals/"+created.Data.GoalID+"/plan", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("plan after delete status = %d", rr.Code)
	}
}

func TestEmptyOrTruncatedBodyIsBadRequest(t *testing.T) {
	h := newTestServer()
	cases := []struct{ path, body string }{
		{"/goals", ""},
		{"/goals", `{"name":"x"`},
		{"/transactions/expenses", ""},
		{"/transactions/income", `{"income":[`},
	}
	for _, tc := range cases {
		rr := do(t, h, http.MethodPost, tc.path, tc.body)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("POST %s %q: status = %d: %s", tc.path, tc.body, rr.Code, rr.Body.String())
		}
	}
}
