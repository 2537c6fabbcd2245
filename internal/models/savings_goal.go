package models

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SavingsCategories are the categories a savings goal can have.
var SavingsCategories = []string{
	"Financial Goals",
	"Education",
	"Travel",
	"Home Improvement",
	"Health and Wellness",
	"Retirement",
	"Emergency Fund",
	"Major Purchase",
	"Debt Repayment",
	"Other",
}

// MilestonePercentages are the percentages of the target amount
// for which milestones are created.
var MilestonePercentages = []int64{25, 50, 75}

// SavingsGoal is an amount a user wants to have saved until a deadline.
type SavingsGoal struct {
	DefaultModel
	User          User      `gorm:"constraint:OnDelete:CASCADE"`
	UserID        uuid.UUID `gorm:"index"`
	Name          string
	Category      string
	TargetAmount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CurrentAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Deadline      time.Time
	Milestones    []Milestone `gorm:"constraint:OnDelete:CASCADE"`
}

// Milestone is a partial amount of a savings goal.
type Milestone struct {
	DefaultModel
	SavingsGoalID uuid.UUID `gorm:"index"`
	Percentage    int64
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Reached       bool
}

// BeforeCreate creates the milestones for a new goal if it has none.
func (g *SavingsGoal) BeforeCreate(tx *gorm.DB) error {
	if err := g.DefaultModel.BeforeCreate(tx); err != nil {
		return err
	}

	if len(g.Milestones) == 0 {
		for _, p := range MilestonePercentages {
			g.Milestones = append(g.Milestones, Milestone{
				Percentage: p,
				Amount:     g.TargetAmount.Mul(decimal.NewFromInt(p)).Div(decimal.NewFromInt(100)),
			})
		}
	}
	g.updateMilestones()

	return nil
}

func (g *SavingsGoal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Category = strings.TrimSpace(g.Category)

	if g.Category != "" && !slices.Contains(SavingsCategories, g.Category) {
		return ErrSavingsGoalCategory
	}

	if !g.TargetAmount.IsPositive() {
		return ErrSavingsGoalTarget
	}

	if g.CurrentAmount.IsNegative() {
		return ErrAmountNegative
	}

	g.Deadline = g.Deadline.UTC()

	return nil
}

func (g *SavingsGoal) AfterFind(tx *gorm.DB) error {
	if err := g.DefaultModel.AfterFind(tx); err != nil {
		return err
	}

	g.Deadline = g.Deadline.In(time.UTC)
	return nil
}

// SetCurrentAmount sets the saved amount and updates which milestones are reached.
func (g *SavingsGoal) SetCurrentAmount(amount decimal.Decimal) {
	g.CurrentAmount = amount
	g.updateMilestones()
}

// Contribute adds amount to the saved amount.
func (g *SavingsGoal) Contribute(amount decimal.Decimal) {
	g.SetCurrentAmount(g.CurrentAmount.Add(amount))
}

// Reached reports whether the target amount has been saved.
func (g SavingsGoal) Reached() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

func (g *SavingsGoal) updateMilestones() {
	for i := range g.Milestones {
		g.Milestones[i].Reached = g.CurrentAmount.GreaterThanOrEqual(g.Milestones[i].Amount)
	}
}

// Save persists the goal together with its milestones.
func (g *SavingsGoal) Save(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(g).Omit(clause.Associations).Update("current_amount", g.CurrentAmount).Error
		if err != nil {
			return err
		}

		for _, m := range g.Milestones {
			err := tx.Model(&Milestone{}).Where("id = ?", m.ID).Update("reached", m.Reached).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
