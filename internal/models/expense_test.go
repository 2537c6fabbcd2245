package models_test

import (
	"time"

	"github.com/pocket-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExpenseAmountNegative() {
	user := suite.createTestUser(models.User{})

	err := models.DB.Create(&models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(-0.01)}).Error
	suite.Assert().ErrorIs(err, models.ErrAmountNegative)
}

func (suite *TestSuiteStandard) TestExpenseDefaultDate() {
	user := suite.createTestUser(models.User{})

	before := time.Now()
	expense := suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(5)})

	assert.False(suite.T(), expense.Date.IsZero())
	assert.WithinDuration(suite.T(), before, expense.Date, time.Minute)
}

func (suite *TestSuiteStandard) TestExpenseDateUTC() {
	user := suite.createTestUser(models.User{})
	tz := time.FixedZone("UTC+9", 9*60*60)

	date := time.Date(2024, 6, 1, 2, 0, 0, 0, tz)
	expense := suite.createTestExpense(models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(5), Date: date})

	var found models.Expense
	suite.Require().Nil(models.DB.First(&found, "id = ?", expense.ID).Error)

	assert.Equal(suite.T(), time.UTC, found.Date.Location())
	assert.True(suite.T(), date.Equal(found.Date))
}

func (suite *TestSuiteStandard) TestExpenseSnapshot() {
	user := suite.createTestUser(models.User{})
	date := time.Date(2024, 6, 1, 2, 0, 0, 0, time.UTC)

	expense := suite.createTestExpense(models.Expense{
		UserID:      user.ID,
		Amount:      decimal.NewFromFloat(12.34),
		Category:    " Food ",
		Description: "Lunch",
		Date:        date,
	})

	s := expense.Snapshot()
	assert.Equal(suite.T(), "Food", s.Category)
	assert.True(suite.T(), decimal.NewFromFloat(12.34).Equal(s.Amount))
	assert.True(suite.T(), date.Equal(s.Date))
}
