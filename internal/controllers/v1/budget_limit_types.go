package v1

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/budget"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// BudgetLimitEditable represents all user configurable parameters
type BudgetLimitEditable struct {
	Category string           `json:"category" binding:"required" example:"Groceries"`                                               // The category label the limit applies to
	Amount   *decimal.Decimal `json:"amount" binding:"required" example:"400" minimum:"0" swaggertype:"primitive,string"`            // The spending ceiling for the period. Must not be negative
	Period   types.Period     `json:"period" binding:"required" example:"monthly" enums:"daily,weekly,monthly" swaggertype:"string"` // The period the limit applies to
}

func (editable BudgetLimitEditable) model(userID uuid.UUID) models.BudgetLimit {
	return models.BudgetLimit{
		UserID:   userID,
		Category: editable.Category,
		Amount:   *editable.Amount,
		Period:   editable.Period,
	}
}

type BudgetLimitLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/budget-limits/0c2ba2d4-1f22-4ab0-a1b6-2d4c8f4a2f6d"`        // The budget limit itself
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?category=Groceries&from=2024-05-01T00:00:00Z"` // Expenses counted in the current window
}

type BudgetLimit struct {
	models.DefaultModel
	BudgetLimitEditable
	Links BudgetLimitLinks `json:"links"`

	// These fields are computed
	WindowStart time.Time       `json:"windowStart" example:"2024-05-01T00:00:00Z"` // Start of the current window of the period
	Spent       decimal.Decimal `json:"spent" example:"312.44"`                     // Amount spent for the category in the current window
	Exceeded    bool            `json:"exceeded" example:"false"`                   // True if the spent amount has reached the limit
}

// newBudgetLimit returns the API representation of a limit, evaluated against
// the expenses of its category.
func newBudgetLimit(c *gin.Context, model models.BudgetLimit, expenses []budget.Expense, now time.Time) BudgetLimit {
	u := c.GetString(string(models.DBContextURL))

	start := budget.WindowStart(model.Period, now)
	spent := budget.Spent(expenses, model.Category, start)

	return BudgetLimit{
		DefaultModel: model.DefaultModel,
		BudgetLimitEditable: BudgetLimitEditable{
			Category: model.Category,
			Amount:   &model.Amount,
			Period:   model.Period,
		},
		Links: BudgetLimitLinks{
			Self:     fmt.Sprintf("%s/v1/budget-limits/%s", u, model.ID),
			Expenses: fmt.Sprintf("%s/v1/expenses?category=%s&from=%s", u, url.QueryEscape(model.Category), url.QueryEscape(start.Format(time.RFC3339))),
		},
		WindowStart: start,
		Spent:       spent,
		Exceeded:    spent.GreaterThanOrEqual(model.Amount),
	}
}

type BudgetLimitListResponse struct {
	Data       []BudgetLimit `json:"data"`                                                          // List of Budget Limits
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type BudgetLimitCreateResponse struct {
	Data  []BudgetLimitResponse `json:"data"`                                                          // List of the created Budget Limits or their respective error
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (b *BudgetLimitCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetLimitResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetLimitResponse struct {
	Data  *BudgetLimit `json:"data"`                                                          // Data for the Budget Limit
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetLimitQueryFilter struct {
	Category string       `form:"category" filterField:"false"` // Exact category label
	Period   types.Period `form:"period" filterField:"false"`   // The period of the limit
	Offset   uint         `form:"offset" filterField:"false"`   // The offset of the first Budget Limit returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`    // Maximum number of Budget Limits to return. Defaults to 50.
}

// categoryExpenses returns snapshots of the authenticated user's expenses
// that are in one of the categories.
func categoryExpenses(c *gin.Context, categories ...string) ([]budget.Expense, error) {
	var expenses []models.Expense
	err := owned(c).Where("category IN ?", categories).Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return snapshots(expenses), nil
}

func snapshots(expenses []models.Expense) []budget.Expense {
	s := make([]budget.Expense, 0, len(expenses))
	for _, e := range expenses {
		s = append(s, e.Snapshot())
	}

	return s
}
