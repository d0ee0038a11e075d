// Package ledger owns the authoritative list of trip expenses and the
// aggregate computations over them.
//
// The ledger lives in memory and is mirrored to a single snapshot slot in
// persistent storage: every mutation re-persists the entire expense sequence.
// A mutation that fails to persist is rolled back in memory, so the ledger
// never silently diverges from its snapshot.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"sync"

	apperrors "github.com/kuanensn/italy/internal/errors"
	"github.com/kuanensn/italy/internal/logger"
	"github.com/kuanensn/italy/internal/models"
	"github.com/kuanensn/italy/internal/store"
	"github.com/kuanensn/italy/internal/uuid"
)

// InitSource reports where the initial ledger contents came from.
type InitSource string

const (
	// SourceStored means a valid snapshot was loaded from storage.
	SourceStored InitSource = "stored"
	// SourceSeed means the snapshot was absent or unusable and the
	// ledger started from the default seed list.
	SourceSeed InitSource = "seed"
)

// InitResult describes how Initialize populated the ledger. Err carries the
// read or parse error that was swallowed on the way to the seed fallback;
// it is informational, never fatal.
type InitResult struct {
	Source InitSource
	Err    error
}

// Ledger is the ordered sequence of expense records for the trip.
// Insertion order is display order; the presentation layer reverses it for
// most-recent-first rendering.
type Ledger struct {
	mu       sync.Mutex
	store    store.SnapshotStore
	key      string
	expenses []models.Expense
}

// Initialize loads the ledger from its snapshot, falling back to the default
// seed list when the snapshot is absent, unreadable, or fails validation.
// It never fails outward.
func Initialize(ctx context.Context, s store.SnapshotStore, key string) (*Ledger, InitResult) {
	l := &Ledger{store: s, key: key}

	data, found, err := s.Load(ctx, key)
	if err != nil {
		logger.Get().Warnw("expense snapshot unreadable, using defaults", "key", key, "error", err)
		l.expenses = DefaultExpenses()
		return l, InitResult{Source: SourceSeed, Err: err}
	}
	if !found {
		l.expenses = DefaultExpenses()
		return l, InitResult{Source: SourceSeed}
	}

	expenses, err := decodeSnapshot(data)
	if err != nil {
		logger.Get().Warnw("expense snapshot invalid, using defaults", "key", key, "error", err)
		l.expenses = DefaultExpenses()
		return l, InitResult{Source: SourceSeed, Err: err}
	}

	l.expenses = expenses
	return l, InitResult{Source: SourceStored}
}

// decodeSnapshot parses a persisted snapshot and checks every record against
// the expense invariants. A single bad record invalidates the whole snapshot;
// there is no partial recovery.
func decodeSnapshot(data []byte) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := json.Unmarshal(data, &expenses); err != nil {
		return nil, err
	}
	for i, e := range expenses {
		if err := validate(e); err != nil {
			return nil, fmt.Errorf("stored record %d: %w", i, err)
		}
	}
	return expenses, nil
}

// validate checks the invariants every expense record must hold.
func validate(e models.Expense) error {
	if e.ID == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidExpense, "missing id")
	}
	if strings.TrimSpace(e.Description) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidExpense, "empty description")
	}
	if !(e.Amount > 0) || math.IsInf(e.Amount, 0) {
		return apperrors.WithMessage(apperrors.ErrInvalidExpense, "amount must be a positive finite number")
	}
	if !e.Currency.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidExpense, "unknown currency "+string(e.Currency))
	}
	if !e.Category.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidExpense, "unknown category "+string(e.Category))
	}
	if !e.PaidBy.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidExpense, "unknown payer "+string(e.PaidBy))
	}
	return nil
}

// Expenses returns a copy of the ledger in insertion order.
func (l *Ledger) Expenses() []models.Expense {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Expense, len(l.expenses))
	copy(out, l.expenses)
	return out
}

// Add validates and appends a new expense, assigns it a time-ordered unique
// ID, and persists the updated sequence. Validation failures leave the
// ledger untouched.
func (l *Ledger) Add(ctx context.Context, description string, amount float64, cur models.Currency, cat models.Category, paidBy models.Payer) (models.Expense, error) {
	expense := models.Expense{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		Currency:    cur,
		Category:    cat,
		PaidBy:      paidBy,
	}
	if err := validate(expense); err != nil {
		return models.Expense{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.expenses = append(l.expenses, expense)
	if err := l.persist(ctx); err != nil {
		l.expenses = l.expenses[:len(l.expenses)-1]
		return models.Expense{}, apperrors.Wrap(apperrors.ErrSnapshotWriteFailed, err)
	}
	return expense, nil
}

// Remove deletes the expense with the given id if present and persists the
// result. Removing an absent id is an idempotent no-op returning false.
func (l *Ledger) Remove(ctx context.Context, id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i, e := range l.expenses {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}

	removed := l.expenses[idx]
	l.expenses = append(l.expenses[:idx], l.expenses[idx+1:]...)
	if err := l.persist(ctx); err != nil {
		l.expenses = append(l.expenses[:idx], append([]models.Expense{removed}, l.expenses[idx:]...)...)
		return false, apperrors.Wrap(apperrors.ErrSnapshotWriteFailed, err)
	}
	return true, nil
}

// ResetToDefault replaces the entire ledger with the seed list and persists
// it. Destructive; there is no undo.
func (l *Ledger) ResetToDefault(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	prev := l.expenses
	l.expenses = DefaultExpenses()
	if err := l.persist(ctx); err != nil {
		l.expenses = prev
		return apperrors.Wrap(apperrors.ErrSnapshotWriteFailed, err)
	}
	return nil
}

// persist overwrites the snapshot with the full current sequence.
// Callers must hold l.mu.
func (l *Ledger) persist(ctx context.Context) error {
	data, err := json.Marshal(l.expenses)
	if err != nil {
		return err
	}
	return l.store.Save(ctx, l.key, data)
}
