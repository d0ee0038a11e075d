package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/kuanensn/italy/internal/models"
	"github.com/kuanensn/italy/internal/store"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewExpense builds a valid expense record with a unique id and description.
func NewExpense(amount float64, cur models.Currency, cat models.Category, paidBy models.Payer) models.Expense {
	n := nextID()
	return models.Expense{
		ID:          fmt.Sprintf("test-%d", n),
		Description: fmt.Sprintf("Test Expense %d", n),
		Amount:      amount,
		Currency:    cur,
		Category:    cat,
		PaidBy:      paidBy,
	}
}

// SeedSnapshot writes the given expense sequence into the store under key.
func SeedSnapshot(t *testing.T, s store.SnapshotStore, key string, expenses []models.Expense) {
	t.Helper()

	data, err := json.Marshal(expenses)
	if err != nil {
		t.Fatalf("failed to marshal snapshot fixture: %v", err)
	}
	if err := s.Save(context.Background(), key, data); err != nil {
		t.Fatalf("failed to seed snapshot: %v", err)
	}
}

// SeedRawSnapshot writes an arbitrary payload into the store under key,
// for corrupt-snapshot scenarios.
func SeedRawSnapshot(t *testing.T, s store.SnapshotStore, key string, data []byte) {
	t.Helper()

	if err := s.Save(context.Background(), key, data); err != nil {
		t.Fatalf("failed to seed raw snapshot: %v", err)
	}
}
