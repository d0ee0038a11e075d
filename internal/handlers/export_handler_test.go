package handlers

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strings"
	"testing"
)

func TestExpenseHandler_ExportCSV(t *testing.T) {
	handler := NewExpenseHandler(newTestLedger(t))
	r := setupExpenseRouter(handler)

	rec := doRequest(r, "GET", "/expenses/export/csv", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("expected text/csv content type, got %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("expected attachment disposition, got %q", cd)
	}

	body := rec.Body.Bytes()
	bom := []byte{0xEF, 0xBB, 0xBF}
	if !bytes.HasPrefix(body, bom) {
		t.Fatal("expected a UTF-8 BOM prefix")
	}

	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(body, bom))).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}
	if len(rows) != 7 {
		t.Fatalf("expected header plus 6 seed rows, got %d rows", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][6] != "Amount (TWD)" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "init-1" {
		t.Errorf("expected init-1 in the first data row, got %v", rows[1][0])
	}
}

func TestExpenseHandler_ExportCSV_PayerFilter(t *testing.T) {
	handler := NewExpenseHandler(newTestLedger(t))
	r := setupExpenseRouter(handler)

	rec := doRequest(r, "GET", "/expenses/export/csv?payer=GROUP", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	bom := []byte{0xEF, 0xBB, 0xBF}
	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(rec.Body.Bytes(), bom))).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected header only for GROUP with no group expenses, got %d rows", len(rows))
	}
}

func TestExpenseHandler_ExportXLSX(t *testing.T) {
	handler := NewExpenseHandler(newTestLedger(t))
	r := setupExpenseRouter(handler)

	rec := doRequest(r, "GET", "/expenses/export/xlsx", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("expected xlsx content type, got %q", ct)
	}
	// XLSX files are zip archives, which start with "PK".
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")) {
		t.Error("expected a zip-packaged workbook")
	}
}
