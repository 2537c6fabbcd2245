package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/budget"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
)

type BudgetWarningListResponse struct {
	Data        []budget.Warning `json:"data"`                                                                // Warnings for every limit that has been reached
	EvaluatedAt *time.Time       `json:"evaluatedAt" example:"2024-05-15T14:30:00Z"`                          // The time the limits were evaluated at
	Error       *string          `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// RegisterBudgetWarningRoutes registers the routes for budget warnings with
// the RouterGroup that is passed.
func RegisterBudgetWarningRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudgetWarnings)
	r.GET("", GetBudgetWarnings)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget Warnings
// @Success		204
// @Router			/v1/budget-warnings [options]
func OptionsBudgetWarnings(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get budget warnings
// @Description	Evaluates all budget limits against the expenses and returns a warning for every limit
// @Description	where the spending in the current window has reached the limit
// @Tags			Budget Warnings
// @Produce		json
// @Success		200	{object}	BudgetWarningListResponse
// @Failure		500	{object}	BudgetWarningListResponse
// @Router			/v1/budget-warnings [get]
func GetBudgetWarnings(c *gin.Context) {
	var limits []models.BudgetLimit
	err := owned(c).Order("created_at ASC").Find(&limits).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetWarningListResponse{
			Error: &e,
		})
		return
	}

	var expenses []models.Expense
	err = owned(c).Find(&expenses).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetWarningListResponse{
			Error: &e,
		})
		return
	}

	snapshot := make([]budget.Limit, 0, len(limits))
	for _, l := range limits {
		snapshot = append(snapshot, l.Snapshot())
	}

	now := evaluator(c).Now()

	c.JSON(http.StatusOK, BudgetWarningListResponse{
		Data:        budget.Evaluate(snapshots(expenses), snapshot, now),
		EvaluatedAt: &now,
	})
}
