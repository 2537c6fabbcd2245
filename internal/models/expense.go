package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/budget"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single spending of a user.
//
// The category is a free-form label and is not validated against the
// categories of the user.
type Expense struct {
	DefaultModel
	User        User            `gorm:"constraint:OnDelete:CASCADE"`
	UserID      uuid.UUID       `gorm:"index"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Category    string          `gorm:"index"`
	Description string
	Date        time.Time `gorm:"index"`
}

// BeforeSave trims whitespace, validates the amount and stores the date in UTC.
//
// When no date is set, the expense is attributed to the time it is saved.
func (e *Expense) BeforeSave(tx *gorm.DB) error {
	e.Category = strings.TrimSpace(e.Category)
	e.Description = strings.TrimSpace(e.Description)

	if e.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if e.Date.IsZero() {
		e.Date = tx.NowFunc()
	}
	e.Date = e.Date.UTC()

	return nil
}

func (e *Expense) AfterFind(tx *gorm.DB) error {
	if err := e.DefaultModel.AfterFind(tx); err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return nil
}

// Snapshot returns the expense as input for the budget evaluator.
func (e Expense) Snapshot() budget.Expense {
	return budget.Expense{
		Category: e.Category,
		Amount:   e.Amount,
		Date:     e.Date,
	}
}
