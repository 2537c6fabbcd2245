package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/auth"
	"github.com/pocket-ledger/backend/internal/budget"
	"github.com/pocket-ledger/backend/internal/models"
	"gorm.io/gorm"
)

// evaluator returns the budget evaluator for the request.
func evaluator(c *gin.Context) budget.Evaluator {
	e, ok := c.Get(string(models.ContextEvaluator))
	if !ok {
		return budget.NewEvaluator(nil)
	}

	return e.(budget.Evaluator)
}

// owned scopes a query to the resources of the authenticated user.
func owned(c *gin.Context) *gorm.DB {
	return models.DB.Where("user_id = ?", auth.UserID(c))
}

// ownedResource loads a resource of the authenticated user by its ID.
//
// Resources of other users are reported as not found.
func ownedResource[R models.Category | models.Expense | models.BudgetLimit | models.SavingsGoal](c *gin.Context, id URIID) (R, error) {
	var resource R
	err := owned(c).First(&resource, "id = ?", id.ID.UUID).Error
	return resource, err
}
