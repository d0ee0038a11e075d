package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kuanensn/italy/internal/errors"
	"github.com/kuanensn/italy/internal/ledger"
	"github.com/kuanensn/italy/internal/models"
	"github.com/kuanensn/italy/internal/pagination"
)

// ExpenseHandler handles budget ledger requests.
type ExpenseHandler struct {
	ledger *ledger.Ledger
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(l *ledger.Ledger) *ExpenseHandler {
	return &ExpenseHandler{ledger: l}
}

// CreateExpenseRequest represents the request payload for recording an expense.
type CreateExpenseRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=200"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Currency    string  `json:"currency" binding:"required,expense_currency"`
	Category    string  `json:"category" binding:"required,expense_category"`
	PaidBy      string  `json:"paid_by" binding:"required,paid_by"`
}

// payerQuery carries the optional payer filter on read endpoints.
type payerQuery struct {
	Payer string `form:"payer,default=ALL" binding:"omitempty,payer_filter"`
}

// payerFilter binds the payer query parameter, defaulting to ALL.
func payerFilter(c *gin.Context) (models.PayerFilter, error) {
	var q payerQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "payer must be ALL, ME or GROUP")
	}
	if q.Payer == "" {
		return models.FilterAll, nil
	}
	return models.PayerFilter(q.Payer), nil
}

// reversed returns the expenses most-recent-first for display.
func reversed(expenses []models.Expense) []models.Expense {
	out := make([]models.Expense, len(expenses))
	for i, e := range expenses {
		out[len(expenses)-1-i] = e
	}
	return out
}

// ListExpenses handles listing the ledger, most recent first.
// @Summary     List expenses
// @Description List recorded expenses most-recent-first, optionally filtered by payer
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       payer     query string false "Payer filter (ALL/ME/GROUP)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} map[string]interface{} "Paginated expenses with the filtered total"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	filter, err := payerFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filtered := ledger.FilterByPayer(h.ledger.Expenses(), filter)
	resp := pagination.PageSlice(reversed(filtered), page)

	c.JSON(http.StatusOK, gin.H{
		"expenses":      resp,
		"payer":         filter,
		"total_in_base": ledger.TotalInBase(filtered),
		"base_currency": "TWD",
	})
}

// GetSummary handles the per-category aggregation for the chart.
// @Summary     Expense summary
// @Description Per-category totals in the base currency, sorted descending, with chart styles
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       payer query string false "Payer filter (ALL/ME/GROUP)"
// @Success     200 {object} map[string]interface{} "Category breakdown and total"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /expenses/summary [get]
func (h *ExpenseHandler) GetSummary(c *gin.Context) {
	filter, err := payerFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filtered := ledger.FilterByPayer(h.ledger.Expenses(), filter)

	c.JSON(http.StatusOK, gin.H{
		"categories":    ledger.AggregateByCategory(filtered),
		"payer":         filter,
		"total_in_base": ledger.TotalInBase(filtered),
		"base_currency": "TWD",
	})
}

// CreateExpense handles recording a new expense.
// @Summary     Record an expense
// @Description Validate and append a new expense, persisting the full ledger
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Persistence failure"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.ledger.Add(c.Request.Context(),
		req.Description, req.Amount,
		models.Currency(req.Currency), models.Category(req.Category), models.Payer(req.PaidBy))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// DeleteExpense handles removing an expense by id.
// @Summary     Delete an expense
// @Description Remove the expense with the given id and persist the updated ledger
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     204 "Expense removed"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Persistence failure"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	removed, err := h.ledger.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !removed {
		respondWithError(c, apperrors.ErrExpenseNotFound)
		return
	}

	c.Status(http.StatusNoContent)
}

// ResetExpenses handles resetting the ledger to the seed list.
// @Summary     Reset the ledger
// @Description Replace all expenses with the default seed list; destructive
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Seed ledger"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Persistence failure"
// @Router      /expenses/reset [post]
func (h *ExpenseHandler) ResetExpenses(c *gin.Context) {
	if err := h.ledger.ResetToDefault(c.Request.Context()); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": h.ledger.Expenses()})
}
