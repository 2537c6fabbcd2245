package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/budget"
	"github.com/pocket-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetLimit is a spending ceiling for a category within a period.
//
// There can be any number of limits for the same category, each is
// evaluated on its own.
type BudgetLimit struct {
	DefaultModel
	User     User            `gorm:"constraint:OnDelete:CASCADE"`
	UserID   uuid.UUID       `gorm:"index"`
	Category string          `gorm:"index"`
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Period   types.Period
}

func (l *BudgetLimit) BeforeSave(_ *gorm.DB) error {
	l.Category = strings.TrimSpace(l.Category)

	if l.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if !l.Period.Valid() {
		return types.ErrPeriodInvalid
	}

	return nil
}

// Snapshot returns the limit as input for the budget evaluator.
func (l BudgetLimit) Snapshot() budget.Limit {
	return budget.Limit{
		Category: l.Category,
		Amount:   l.Amount,
		Period:   l.Period,
	}
}
