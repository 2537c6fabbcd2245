package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	Amount      decimal.Decimal `json:"amount" example:"14.03" minimum:"0"`                                            // The amount spent. Must not be negative
	Category    string          `json:"category" binding:"required" example:"Groceries"`                               // The category label of the expense
	Description string          `json:"description" example:"Weekly groceries" default:""`                             // A description of the expense
	Date        time.Time       `json:"date" example:"2024-05-14T18:32:11Z" default:"The time the expense is created"` // The time the expense is attributed to
}

func (editable ExpenseEditable) model(userID uuid.UUID) models.Expense {
	return models.Expense{
		UserID:      userID,
		Amount:      editable.Amount,
		Category:    editable.Category,
		Description: editable.Description,
		Date:        editable.Date,
	}
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/d430d7c3-d14c-4712-9336-ee56965a6673"` // The expense itself
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Amount:      model.Amount,
			Category:    model.Category,
			Description: model.Description,
			Date:        model.Date,
		},
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of Expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Data  []ExpenseResponse `json:"data"`                                                          // List of the created Expenses or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (e *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the Expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	Category    string `form:"category" filterField:"false"`    // Exact category label
	From        string `form:"from" filterField:"false"`        // Expenses on or after this time. RFC3339 or YYYY-MM-DD
	Until       string `form:"until" filterField:"false"`       // Expenses on or before this time. RFC3339 or YYYY-MM-DD
	Description string `form:"description" filterField:"false"` // Glob pattern for the description, '*' matches any sequence
	Offset      uint   `form:"offset" filterField:"false"`      // The offset of the first Expense returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`       // Maximum number of Expenses to return. Defaults to 50.
}

// timeRange parses the From and Until parameters.
//
// Full dates are interpreted in loc. A full date for Until includes the whole day.
func (f ExpenseQueryFilter) timeRange(loc *time.Location) (from, until time.Time, err error) {
	if f.From != "" {
		from, err = types.ParseTime(f.From, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("the from parameter is invalid: %w", err)
		}
	}

	if f.Until != "" {
		until, err = types.ParseTime(f.Until, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("the until parameter is invalid: %w", err)
		}

		if types.IsFullDate(f.Until) {
			until = types.EndOfDay(until)
		}
	}

	if !from.IsZero() && !until.IsZero() && from.After(until) {
		return time.Time{}, time.Time{}, errFromAfterUntil
	}

	return from, until, nil
}
