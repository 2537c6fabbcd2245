package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/pocket-ledger/backend/internal/controllers/v1"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/types"
	"github.com/pocket-ledger/backend/test"
	"github.com/shopspring/decimal"
)

// TestBudgetWarnings verifies that limits that are reached in their current window
// are reported, in the order the limits were created.
func (suite *TestSuiteStandard) TestBudgetWarnings() {
	// Wednesday
	now := time.Date(2024, time.March, 13, 15, 0, 0, 0, time.UTC)

	suite.createTestExpense(suite.T(), v1.ExpenseEditable{Category: "Food", Amount: decimal.NewFromInt(30), Date: now.Add(-2 * time.Hour)})
	suite.createTestExpense(suite.T(), v1.ExpenseEditable{Category: "Food", Amount: decimal.NewFromInt(25), Date: now.Add(-time.Hour)})
	suite.createTestExpense(suite.T(), v1.ExpenseEditable{Category: "Transport", Amount: decimal.NewFromInt(40), Date: now.AddDate(0, 0, -1)})
	suite.createTestExpense(suite.T(), v1.ExpenseEditable{Category: "Rent", Amount: decimal.NewFromInt(900), Date: now.AddDate(0, 0, -10)})

	suite.createTestBudgetLimit(suite.T(), v1.BudgetLimitEditable{Category: "Rent", Period: types.PeriodMonthly, Amount: limitAmount(900)})
	suite.createTestBudgetLimit(suite.T(), v1.BudgetLimitEditable{Category: "Food", Period: types.PeriodDaily, Amount: limitAmount(50)})
	suite.createTestBudgetLimit(suite.T(), v1.BudgetLimitEditable{Category: "Transport", Period: types.PeriodWeekly, Amount: limitAmount(100)})

	// Limits and expenses of other users are not evaluated
	other := test.Bearer(signup(suite.T(), "").Token)
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budget-limits", []v1.BudgetLimitEditable{{Category: "Food", Period: types.PeriodDaily, Amount: limitAmount(10)}}, other)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = suite.requestAt(suite.T(), now, http.MethodGet, "http://example.com/v1/budget-warnings", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetWarningListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().True(now.Equal(*response.EvaluatedAt))

	suite.Assert().Equal("Rent", response.Data[0].Category)
	suite.Assert().Equal(types.PeriodMonthly, response.Data[0].Period)
	suite.Assert().True(decimal.NewFromInt(900).Equal(response.Data[0].Current))
	suite.Assert().True(decimal.NewFromInt(900).Equal(response.Data[0].Limit))

	suite.Assert().Equal("Food", response.Data[1].Category)
	suite.Assert().Equal(types.PeriodDaily, response.Data[1].Period)
	suite.Assert().True(decimal.NewFromInt(55).Equal(response.Data[1].Current))
	suite.Assert().True(decimal.NewFromInt(50).Equal(response.Data[1].Limit))
}

// TestBudgetWarningsNextDay verifies that the daily window moves with the clock.
func (suite *TestSuiteStandard) TestBudgetWarningsNextDay() {
	now := time.Date(2024, time.March, 13, 15, 0, 0, 0, time.UTC)

	suite.createTestExpense(suite.T(), v1.ExpenseEditable{Category: "Food", Amount: decimal.NewFromInt(60), Date: now})
	suite.createTestBudgetLimit(suite.T(), v1.BudgetLimitEditable{Category: "Food", Period: types.PeriodDaily, Amount: limitAmount(50)})

	r := suite.requestAt(suite.T(), now.AddDate(0, 0, 1), http.MethodGet, "http://example.com/v1/budget-warnings", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetWarningListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().NotNil(response.Data)
	suite.Assert().Len(response.Data, 0)
}

func (suite *TestSuiteStandard) TestBudgetWarningsOptions() {
	r := suite.request(suite.T(), http.MethodOptions, "http://example.com/v1/budget-warnings", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestBudgetWarningsDBClosed() {
	suite.CloseDB()

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budget-warnings", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.BudgetWarningListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Contains(*response.Error, models.ErrGeneral.Error())
}
