package ledger

import "github.com/kuanensn/italy/internal/models"

// defaultExpenses are the trip-initialization costs: the flights and rail
// tickets booked before departure, all paid individually in TWD.
var defaultExpenses = []models.Expense{
	{ID: "init-1", Description: "米蘭機票 (ITA)", Amount: 6277, Currency: models.CurrencyTWD, Category: models.CategoryTransport, PaidBy: models.PayerMe},
	{ID: "init-2", Description: "那不勒斯機票 (EasyJet)", Amount: 2921, Currency: models.CurrencyTWD, Category: models.CategoryTransport, PaidBy: models.PayerMe},
	{ID: "init-3", Description: "羅馬機票 (Ryanair)", Amount: 2834, Currency: models.CurrencyTWD, Category: models.CategoryTransport, PaidBy: models.PayerMe},
	{ID: "init-4", Description: "巴士 (Naples -> Bari)", Amount: 525, Currency: models.CurrencyTWD, Category: models.CategoryTransport, PaidBy: models.PayerMe},
	{ID: "init-5", Description: "高鐵 (Rome -> Venice)", Amount: 2701, Currency: models.CurrencyTWD, Category: models.CategoryTransport, PaidBy: models.PayerMe},
	{ID: "init-6", Description: "高鐵 (Venice -> Milan)", Amount: 2068, Currency: models.CurrencyTWD, Category: models.CategoryTransport, PaidBy: models.PayerMe},
}

// DefaultExpenses returns a fresh copy of the seed ledger.
func DefaultExpenses() []models.Expense {
	out := make([]models.Expense, len(defaultExpenses))
	copy(out, defaultExpenses)
	return out
}
