package integration

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/kuanensn/italy/internal/ledger"
)

func TestExpenseFlow_AddListDelete(t *testing.T) {
	app := setupApp(t)
	token := app.openSession(t)

	// Step 1: The fresh ledger serves the seed list
	rec := app.request("GET", "/api/v1/expenses", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["total_in_base"].(float64) != 17326 {
		t.Fatalf("expected seed total 17326, got %v", result["total_in_base"])
	}

	// Step 2: Record a 5 EUR gelato
	rec = app.request("POST", "/api/v1/expenses",
		`{"description":"gelato","amount":5,"currency":"EUR","category":"FOOD","paid_by":"ME"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	expense := parseJSON(t, rec)["expense"].(map[string]interface{})
	expenseID := expense["id"].(string)

	// Step 3: Total reflects the conversion (17326 + 5*34.5 = 17498.5)
	rec = app.request("GET", "/api/v1/expenses", "", "")
	result = parseJSON(t, rec)
	if result["total_in_base"].(float64) != 17498.5 {
		t.Errorf("expected total 17498.5, got %v", result["total_in_base"])
	}

	// Step 4: The summary gains a FOOD slice
	rec = app.request("GET", "/api/v1/expenses/summary", "", "")
	categories := parseJSON(t, rec)["categories"].([]interface{})
	if len(categories) != 2 {
		t.Fatalf("expected TRANSPORT and FOOD, got %d categories", len(categories))
	}

	// Step 5: Delete the gelato; the total drops back
	rec = app.request("DELETE", fmt.Sprintf("/api/v1/expenses/%s", expenseID), "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/expenses", "", "")
	result = parseJSON(t, rec)
	if result["total_in_base"].(float64) != 17326 {
		t.Errorf("expected total back at 17326, got %v", result["total_in_base"])
	}
}

func TestExpenseFlow_PersistsAcrossRestart(t *testing.T) {
	app := setupApp(t)
	token := app.openSession(t)

	rec := app.request("POST", "/api/v1/expenses",
		`{"description":"limoncello","amount":12,"currency":"EUR","category":"SHOPPING","paid_by":"GROUP"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// A second ledger on the same store sees the write
	reloaded, result := ledger.Initialize(context.Background(), app.Store, snapshotKey)
	if result.Source != ledger.SourceStored {
		t.Fatalf("expected the snapshot to be readable, got source %s", result.Source)
	}
	if len(reloaded.Expenses()) != 7 {
		t.Errorf("expected 7 expenses after reload, got %d", len(reloaded.Expenses()))
	}
}

func TestExpenseFlow_ResetRestoresSeed(t *testing.T) {
	app := setupApp(t)
	token := app.openSession(t)

	for i := 0; i < 3; i++ {
		rec := app.request("POST", "/api/v1/expenses",
			fmt.Sprintf(`{"description":"snack %d","amount":3,"currency":"EUR","category":"FOOD","paid_by":"ME"}`, i), token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	}

	rec := app.request("POST", "/api/v1/expenses/reset", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	expenses := parseJSON(t, rec)["expenses"].([]interface{})
	if len(expenses) != 6 {
		t.Errorf("expected the 6 seed expenses after reset, got %d", len(expenses))
	}
}

func TestExpenseFlow_MutationsRequireSession(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/expenses",
		`{"description":"gelato","amount":5,"currency":"EUR","category":"FOOD","paid_by":"ME"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 on create without a session, got %d", rec.Code)
	}

	rec = app.request("DELETE", "/api/v1/expenses/init-1", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 on delete without a session, got %d", rec.Code)
	}

	rec = app.request("POST", "/api/v1/expenses/reset", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 on reset without a session, got %d", rec.Code)
	}

	// Reads stay public
	rec = app.request("GET", "/api/v1/expenses", "", "")
	if rec.Code != http.StatusOK {
		t.Errorf("expected public reads to succeed, got %d", rec.Code)
	}
}

func TestTripFlow_ReadOnlyEndpoints(t *testing.T) {
	app := setupApp(t)

	for _, path := range []string{
		"/api/v1/trip",
		"/api/v1/trip/days",
		"/api/v1/trip/days/1",
		"/api/v1/essentials/flights",
		"/api/v1/essentials/accommodation",
		"/api/v1/essentials/contacts",
		"/api/v1/phrases",
	} {
		rec := app.request("GET", path, "", "")
		if rec.Code != http.StatusOK {
			t.Errorf("expected 200 from %s, got %d: %s", path, rec.Code, rec.Body.String())
		}
	}
}
