package models

// Currency is one of the closed set of currencies an expense can be recorded in.
type Currency string

const (
	CurrencyTWD Currency = "TWD"
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyJPY Currency = "JPY"
)

// Valid reports whether c is a member of the currency set.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyTWD, CurrencyEUR, CurrencyUSD, CurrencyJPY:
		return true
	}
	return false
}

// Category classifies what an expense was for.
type Category string

const (
	CategoryFood      Category = "FOOD"
	CategoryTransport Category = "TRANSPORT"
	CategoryShopping  Category = "SHOPPING"
	CategoryStay      Category = "STAY"
	CategoryOther     Category = "OTHER"
)

// Valid reports whether c is a member of the category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryShopping, CategoryStay, CategoryOther:
		return true
	}
	return false
}

// Payer records whether a cost was individual or shared.
type Payer string

const (
	PayerMe    Payer = "ME"
	PayerGroup Payer = "GROUP"
)

// Valid reports whether p is a member of the payer set.
func (p Payer) Valid() bool {
	return p == PayerMe || p == PayerGroup
}

// PayerFilter narrows which expenses participate in an aggregate view.
// It is a view parameter, never persisted.
type PayerFilter string

const (
	FilterAll   PayerFilter = "ALL"
	FilterMe    PayerFilter = "ME"
	FilterGroup PayerFilter = "GROUP"
)

// Valid reports whether f is a member of the filter set.
func (f PayerFilter) Valid() bool {
	return f == FilterAll || f == FilterMe || f == FilterGroup
}

// Expense is a single recorded trip cost. The JSON field names are the
// snapshot wire format and must stay stable across releases.
type Expense struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
	Currency    Currency `json:"currency"`
	Category    Category `json:"category"`
	PaidBy      Payer    `json:"paidBy"`
}
