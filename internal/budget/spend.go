package budget

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the part of an expense the evaluation needs.
type Expense struct {
	Category string
	Amount   decimal.Decimal
	Date     time.Time
}

// Spent returns the sum of all expenses in the category that are
// dated at or after start. Categories are compared case-sensitively.
func Spent(expenses []Expense, category string, start time.Time) decimal.Decimal {
	sum := decimal.Zero

	for _, e := range expenses {
		if e.Category != category || e.Date.Before(start) {
			continue
		}

		sum = sum.Add(e.Amount)
	}

	return sum
}
