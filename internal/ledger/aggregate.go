package ledger

import (
	"sort"

	"github.com/kuanensn/italy/internal/currency"
	"github.com/kuanensn/italy/internal/models"
)

// CategoryStyle is the fixed chart color and display label for a category.
type CategoryStyle struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

var categoryStyles = map[models.Category]CategoryStyle{
	models.CategoryFood:      {Color: "#fca5a5", Label: "食物"},
	models.CategoryTransport: {Color: "#93c5fd", Label: "交通"},
	models.CategoryShopping:  {Color: "#d8b4fe", Label: "購物"},
	models.CategoryStay:      {Color: "#86efac", Label: "住宿"},
	models.CategoryOther:     {Color: "#cbd5e1", Label: "其他"},
}

// defaultStyle covers categories outside the closed set. The enum constraint
// makes that unreachable in practice.
var defaultStyle = CategoryStyle{Color: "#ccc", Label: ""}

// StyleFor returns the display style for a category.
func StyleFor(c models.Category) CategoryStyle {
	if s, ok := categoryStyles[c]; ok {
		return s
	}
	s := defaultStyle
	s.Label = string(c)
	return s
}

// CategoryTotal is one chart slice: a category's total spending in the base
// currency plus its fixed display style.
type CategoryTotal struct {
	Category models.Category `json:"category"`
	Total    float64         `json:"total"`
	Color    string          `json:"color"`
	Label    string          `json:"label"`
}

// FilterByPayer returns the subset of expenses attributed to the given
// payer, preserving relative order. FilterAll returns a fresh slice with
// all elements. Pure; the input is never mutated.
func FilterByPayer(expenses []models.Expense, filter models.PayerFilter) []models.Expense {
	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if filter == models.FilterAll || string(e.PaidBy) == string(filter) {
			out = append(out, e)
		}
	}
	return out
}

// AggregateByCategory groups the given expenses by category, summing each
// group in the base currency, and returns the groups sorted by descending
// total. Categories with no expenses are omitted. Ties break on category
// name so repeated calls over the same input are identical.
func AggregateByCategory(expenses []models.Expense) []CategoryTotal {
	totals := make(map[models.Category]float64)
	for _, e := range expenses {
		totals[e.Category] += currency.ToBase(e.Amount, e.Currency)
	}

	out := make([]CategoryTotal, 0, len(totals))
	for cat, total := range totals {
		style := StyleFor(cat)
		out = append(out, CategoryTotal{
			Category: cat,
			Total:    total,
			Color:    style.Color,
			Label:    style.Label,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// TotalInBase sums the given expenses in the base currency.
// An empty subset totals zero.
func TotalInBase(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += currency.ToBase(e.Amount, e.Currency)
	}
	return total
}
