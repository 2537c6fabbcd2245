package budget

import (
	"time"

	"github.com/pocket-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Limit is the part of a budget limit the evaluation needs.
type Limit struct {
	Category string
	Amount   decimal.Decimal
	Period   types.Period
}

// Warning reports a limit that has been reached or exceeded in its current window.
type Warning struct {
	Category string          `json:"category" example:"Groceries"` // Category of the limit
	Current  decimal.Decimal `json:"current" example:"55"`         // Amount spent in the current window
	Limit    decimal.Decimal `json:"limit" example:"50"`           // The configured ceiling
	Period   types.Period    `json:"period" example:"daily"`       // Period of the limit
}

// Evaluate returns one warning for every limit whose spend in the
// current window is at least its amount. Warnings are in the order of
// the limits.
func Evaluate(expenses []Expense, limits []Limit, now time.Time) []Warning {
	warnings := make([]Warning, 0)

	for _, limit := range limits {
		start := WindowStart(limit.Period, now)
		spent := Spent(expenses, limit.Category, start)

		if spent.GreaterThanOrEqual(limit.Amount) {
			warnings = append(warnings, Warning{
				Category: limit.Category,
				Current:  spent,
				Limit:    limit.Amount,
				Period:   limit.Period,
			})
		}
	}

	return warnings
}

// Evaluator evaluates limits at the time reported by its Clock.
type Evaluator struct {
	Clock Clock
}

// NewEvaluator returns an Evaluator using the clock. A nil clock
// uses the system clock in the local time zone.
func NewEvaluator(clock Clock) Evaluator {
	if clock == nil {
		clock = SystemClock{}
	}

	return Evaluator{Clock: clock}
}

// Evaluate runs Evaluate with the current time of the evaluator's clock.
func (e Evaluator) Evaluate(expenses []Expense, limits []Limit) []Warning {
	return Evaluate(expenses, limits, e.Now())
}

// Now returns the current time of the evaluator's clock.
func (e Evaluator) Now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}

	return e.Clock.Now()
}
