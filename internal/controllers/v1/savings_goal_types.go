package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// SavingsGoalEditable represents all user configurable parameters
type SavingsGoalEditable struct {
	Name         string          `json:"name" binding:"required" example:"New bike"`                 // Name of the goal
	Category     string          `json:"category" example:"Major Purchase" default:""`               // One of the preset savings categories, empty for uncategorized goals
	TargetAmount decimal.Decimal `json:"targetAmount" example:"1200" minimum:"0"`                    // The amount to save. Must be larger than zero
	Deadline     time.Time       `json:"deadline" binding:"required" example:"2025-06-01T00:00:00Z"` // The time the amount should be saved by
}

func (editable SavingsGoalEditable) model(userID uuid.UUID) models.SavingsGoal {
	return models.SavingsGoal{
		UserID:       userID,
		Name:         editable.Name,
		Category:     editable.Category,
		TargetAmount: editable.TargetAmount,
		Deadline:     editable.Deadline,
	}
}

// SavingsGoalUpdate sets the saved amount of a goal.
type SavingsGoalUpdate struct {
	CurrentAmount *decimal.Decimal `json:"currentAmount" example:"450" swaggertype:"primitive,string"` // The amount saved so far
}

// Contribution adds to the saved amount of a goal.
type Contribution struct {
	Amount *decimal.Decimal `json:"amount" binding:"required" example:"50" swaggertype:"primitive,string"` // The amount to add. Negative amounts withdraw from the goal
}

type Milestone struct {
	Percentage int64           `json:"percentage" example:"25"` // Percentage of the target amount
	Amount     decimal.Decimal `json:"amount" example:"300"`    // Amount for the milestone
	Reached    bool            `json:"reached" example:"true"`  // Is the milestone reached?
}

type SavingsGoalLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/savings-goals/4d3f8fc4-8b8b-4a26-a6a0-0f3a1c4f5a3e"`                        // The goal itself
	Contributions string `json:"contributions" example:"https://example.com/api/v1/savings-goals/4d3f8fc4-8b8b-4a26-a6a0-0f3a1c4f5a3e/contributions"` // Endpoint for contributions to the goal
}

type SavingsGoal struct {
	models.DefaultModel
	SavingsGoalEditable
	CurrentAmount decimal.Decimal  `json:"currentAmount" example:"450"` // The amount saved so far
	Milestones    []Milestone      `json:"milestones"`                  // Milestones at 25 %, 50 % and 75 % of the target amount
	Links         SavingsGoalLinks `json:"links"`

	// These fields are computed
	Reached bool `json:"reached" example:"false"` // Is the target amount saved?
}

func newSavingsGoal(c *gin.Context, model models.SavingsGoal) SavingsGoal {
	url := c.GetString(string(models.DBContextURL))

	milestones := make([]Milestone, 0, len(model.Milestones))
	for _, m := range model.Milestones {
		milestones = append(milestones, Milestone{
			Percentage: m.Percentage,
			Amount:     m.Amount,
			Reached:    m.Reached,
		})
	}

	return SavingsGoal{
		DefaultModel: model.DefaultModel,
		SavingsGoalEditable: SavingsGoalEditable{
			Name:         model.Name,
			Category:     model.Category,
			TargetAmount: model.TargetAmount,
			Deadline:     model.Deadline,
		},
		CurrentAmount: model.CurrentAmount,
		Milestones:    milestones,
		Links: SavingsGoalLinks{
			Self:          fmt.Sprintf("%s/v1/savings-goals/%s", url, model.ID),
			Contributions: fmt.Sprintf("%s/v1/savings-goals/%s/contributions", url, model.ID),
		},
		Reached: model.Reached(),
	}
}

type SavingsGoalListResponse struct {
	Data       []SavingsGoal `json:"data"`                                                          // List of Savings Goals
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type SavingsGoalCreateResponse struct {
	Data  []SavingsGoalResponse `json:"data"`                                                          // List of the created Savings Goals or their respective error
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (s *SavingsGoalCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	s.Data = append(s.Data, SavingsGoalResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SavingsGoalResponse struct {
	Data  *SavingsGoal `json:"data"`                                                          // Data for the Savings Goal
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SavingsGoalQueryFilter struct {
	Name     string `form:"name" filterField:"false"`     // By name
	Category string `form:"category" filterField:"false"` // Exact savings category
	Offset   uint   `form:"offset" filterField:"false"`   // The offset of the first Savings Goal returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`    // Maximum number of Savings Goals to return. Defaults to 50.
}

type SavingsCategoryListResponse struct {
	Data []string `json:"data" example:"Travel"` // The preset savings categories
}
