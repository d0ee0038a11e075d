package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kuanensn/italy/internal/ledger"
	"github.com/kuanensn/italy/internal/models"
	"github.com/kuanensn/italy/internal/testutil"
	"github.com/kuanensn/italy/internal/validator"
)

const testKey = "dolce-vita-expenses-test"

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func newTestLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	s := testutil.NewTestStore(t)
	l, result := ledger.Initialize(context.Background(), s, testKey)
	if result.Source != ledger.SourceSeed {
		t.Fatalf("expected fresh ledger to seed, got %s", result.Source)
	}
	return l
}

func setupExpenseRouter(handler *ExpenseHandler) *gin.Engine {
	r := gin.New()
	r.GET("/expenses", handler.ListExpenses)
	r.GET("/expenses/summary", handler.GetSummary)
	r.GET("/expenses/export/csv", handler.ExportCSV)
	r.GET("/expenses/export/xlsx", handler.ExportXLSX)
	r.POST("/expenses", handler.CreateExpense)
	r.DELETE("/expenses/:id", handler.DeleteExpense)
	r.POST("/expenses/reset", handler.ResetExpenses)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func newAuthedRequest(method, path, body, token string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func doRawRequest(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- tests ---

func TestExpenseHandler_ListExpenses(t *testing.T) {
	t.Run("returns the seed ledger most recent first", func(t *testing.T) {
		handler := NewExpenseHandler(newTestLedger(t))
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["base_currency"] != "TWD" {
			t.Errorf("expected base_currency TWD, got %v", result["base_currency"])
		}
		if result["payer"] != "ALL" {
			t.Errorf("expected payer ALL, got %v", result["payer"])
		}
		if result["total_in_base"].(float64) != 17326 {
			t.Errorf("expected seed total 17326, got %v", result["total_in_base"])
		}

		page := result["expenses"].(map[string]interface{})
		items := page["data"].([]interface{})
		if len(items) != 6 {
			t.Fatalf("expected 6 seed expenses, got %d", len(items))
		}
		first := items[0].(map[string]interface{})
		if first["id"] != "init-6" {
			t.Errorf("expected most recent expense first, got id %v", first["id"])
		}
	})

	t.Run("filters by payer", func(t *testing.T) {
		l := newTestLedger(t)
		if _, err := l.Add(context.Background(), "晚餐", 42, models.CurrencyEUR, models.CategoryFood, models.PayerGroup); err != nil {
			t.Fatalf("seeding group expense: %v", err)
		}
		handler := NewExpenseHandler(l)
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses?payer=GROUP", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		page := result["expenses"].(map[string]interface{})
		items := page["data"].([]interface{})
		if len(items) != 1 {
			t.Fatalf("expected 1 group expense, got %d", len(items))
		}
		if result["total_in_base"].(float64) != 42*34.5 {
			t.Errorf("expected filtered total %v, got %v", 42*34.5, result["total_in_base"])
		}
	})

	t.Run("paginates the filtered list", func(t *testing.T) {
		handler := NewExpenseHandler(newTestLedger(t))
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses?page=2&page_size=4", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		page := parseJSON(t, rec)["expenses"].(map[string]interface{})
		items := page["data"].([]interface{})
		if len(items) != 2 {
			t.Fatalf("expected 2 items on the last page, got %d", len(items))
		}
		if page["total_pages"].(float64) != 2 {
			t.Errorf("expected 2 pages, got %v", page["total_pages"])
		}
	})

	t.Run("treats an empty payer as ALL", func(t *testing.T) {
		handler := NewExpenseHandler(newTestLedger(t))
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses?payer=", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if result := parseJSON(t, rec); result["payer"] != "ALL" {
			t.Errorf("expected payer ALL, got %v", result["payer"])
		}
	})

	t.Run("returns 400 on an unknown payer filter", func(t *testing.T) {
		handler := NewExpenseHandler(newTestLedger(t))
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses?payer=SOMEONE", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestExpenseHandler_GetSummary(t *testing.T) {
	t.Run("returns category totals sorted descending", func(t *testing.T) {
		handler := NewExpenseHandler(newTestLedger(t))
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses/summary", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		categories := result["categories"].([]interface{})
		if len(categories) != 1 {
			t.Fatalf("expected a single seed category, got %d", len(categories))
		}
		transport := categories[0].(map[string]interface{})
		if transport["category"] != "TRANSPORT" {
			t.Errorf("expected TRANSPORT, got %v", transport["category"])
		}
		if transport["total"].(float64) != 17326 {
			t.Errorf("expected total 17326, got %v", transport["total"])
		}
		if transport["color"] != "#93c5fd" {
			t.Errorf("expected transport chart color, got %v", transport["color"])
		}
	})

	t.Run("honors the payer filter", func(t *testing.T) {
		l := newTestLedger(t)
		if _, err := l.Add(context.Background(), "披薩", 18, models.CurrencyEUR, models.CategoryFood, models.PayerGroup); err != nil {
			t.Fatalf("seeding group expense: %v", err)
		}
		handler := NewExpenseHandler(l)
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses/summary?payer=ME", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["total_in_base"].(float64) != 17326 {
			t.Errorf("expected ME total to exclude the group expense, got %v", result["total_in_base"])
		}
	})
}

func TestExpenseHandler_CreateExpense(t *testing.T) {
	t.Run("returns 201 and persists on success", func(t *testing.T) {
		l := newTestLedger(t)
		handler := NewExpenseHandler(l)
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses",
			`{"description":"gelato","amount":5,"currency":"EUR","category":"FOOD","paid_by":"ME"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		expense := parseJSON(t, rec)["expense"].(map[string]interface{})
		if expense["description"] != "gelato" {
			t.Errorf("expected gelato, got %v", expense["description"])
		}
		if expense["id"] == "" {
			t.Error("expected a generated id")
		}
		if len(l.Expenses()) != 7 {
			t.Errorf("expected 7 expenses after create, got %d", len(l.Expenses()))
		}
	})

	t.Run("returns 400 on a non-positive amount", func(t *testing.T) {
		handler := NewExpenseHandler(newTestLedger(t))
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses",
			`{"description":"gelato","amount":0,"currency":"EUR","category":"FOOD","paid_by":"ME"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on an unknown currency", func(t *testing.T) {
		handler := NewExpenseHandler(newTestLedger(t))
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses",
			`{"description":"gelato","amount":5,"currency":"GBP","category":"FOOD","paid_by":"ME"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 on a missing description", func(t *testing.T) {
		handler := NewExpenseHandler(newTestLedger(t))
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses",
			`{"amount":5,"currency":"EUR","category":"FOOD","paid_by":"ME"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}

func TestExpenseHandler_DeleteExpense(t *testing.T) {
	t.Run("returns 204 and removes the expense", func(t *testing.T) {
		l := newTestLedger(t)
		handler := NewExpenseHandler(l)
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "DELETE", "/expenses/init-1", "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
		}
		for _, e := range l.Expenses() {
			if e.ID == "init-1" {
				t.Error("expected init-1 to be removed")
			}
		}
	})

	t.Run("returns 404 for an unknown id", func(t *testing.T) {
		handler := NewExpenseHandler(newTestLedger(t))
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "DELETE", "/expenses/no-such-id", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "EXPENSE_NOT_FOUND")
	})
}

func TestExpenseHandler_ResetExpenses(t *testing.T) {
	l := newTestLedger(t)
	if _, err := l.Add(context.Background(), "extra", 10, models.CurrencyTWD, models.CategoryOther, models.PayerMe); err != nil {
		t.Fatalf("seeding extra expense: %v", err)
	}
	handler := NewExpenseHandler(l)
	r := setupExpenseRouter(handler)

	rec := doRequest(r, "POST", "/expenses/reset", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	expenses := parseJSON(t, rec)["expenses"].([]interface{})
	if len(expenses) != 6 {
		t.Errorf("expected the seed list after reset, got %d expenses", len(expenses))
	}
}
