package models_test

import (
	"testing"

	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetLimitValidation() {
	user := suite.createTestUser(models.User{})

	tests := []struct {
		name   string
		amount decimal.Decimal
		period types.Period
		err    error
	}{
		{"Valid", decimal.NewFromFloat(50), types.PeriodDaily, nil},
		{"Zero amount", decimal.Zero, types.PeriodMonthly, nil},
		{"Negative amount", decimal.NewFromFloat(-1), types.PeriodWeekly, models.ErrAmountNegative},
		{"Unknown period", decimal.NewFromFloat(50), types.Period("yearly"), types.ErrPeriodInvalid},
		{"Empty period", decimal.NewFromFloat(50), types.Period(""), types.ErrPeriodInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&models.BudgetLimit{
				UserID:   user.ID,
				Category: "Food",
				Amount:   tt.amount,
				Period:   tt.period,
			}).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetLimitPeriodRoundTrip() {
	user := suite.createTestUser(models.User{})

	limit := models.BudgetLimit{UserID: user.ID, Category: "Food", Amount: decimal.NewFromFloat(50), Period: types.PeriodWeekly}
	suite.Require().Nil(models.DB.Create(&limit).Error)

	var found models.BudgetLimit
	suite.Require().Nil(models.DB.First(&found, "id = ?", limit.ID).Error)

	want, got := limit.Snapshot(), found.Snapshot()
	assert.Equal(suite.T(), types.PeriodWeekly, got.Period)
	assert.Equal(suite.T(), want.Category, got.Category)
	assert.True(suite.T(), want.Amount.Equal(got.Amount), "amount is %s, expected %s", got.Amount, want.Amount)
}
