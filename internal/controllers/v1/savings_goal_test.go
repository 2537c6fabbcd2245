package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/pocket-ledger/backend/internal/controllers/v1"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestSavingsGoal(t *testing.T, g v1.SavingsGoalEditable, expectedStatus ...int) v1.SavingsGoalResponse {
	if g.Name == "" {
		g.Name = "New bike"
	}

	if g.TargetAmount.IsZero() {
		g.TargetAmount = decimal.NewFromInt(1200)
	}

	if g.Deadline.IsZero() {
		g.Deadline = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := suite.request(t, http.MethodPost, "http://example.com/v1/savings-goals", []v1.SavingsGoalEditable{g})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var goal v1.SavingsGoalCreateResponse
	test.DecodeResponse(t, &r, &goal)

	return goal.Data[0]
}

func (suite *TestSuiteStandard) TestSavingsGoalsCreate() {
	g := suite.createTestSavingsGoal(suite.T(), v1.SavingsGoalEditable{
		Name:         "  Trip to Lisbon ",
		Category:     "Travel",
		TargetAmount: decimal.NewFromInt(1200),
		Deadline:     time.Date(2025, time.June, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*60*60)),
	})

	suite.Assert().Equal("Trip to Lisbon", g.Data.Name)
	suite.Assert().Equal("Travel", g.Data.Category)
	suite.Assert().True(g.Data.CurrentAmount.IsZero())
	suite.Assert().False(g.Data.Reached)
	suite.Assert().Equal(time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC), g.Data.Deadline)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/savings-goals/%s/contributions", g.Data.ID), g.Data.Links.Contributions)

	suite.Require().Len(g.Data.Milestones, 3)
	for i, expected := range []struct {
		percentage int64
		amount     int64
	}{{25, 300}, {50, 600}, {75, 900}} {
		suite.Assert().Equal(expected.percentage, g.Data.Milestones[i].Percentage)
		suite.Assert().True(decimal.NewFromInt(expected.amount).Equal(g.Data.Milestones[i].Amount), "milestone amount is %s", g.Data.Milestones[i].Amount)
		suite.Assert().False(g.Data.Milestones[i].Reached)
	}
}

func (suite *TestSuiteStandard) TestSavingsGoalsCreateFails() {
	tests := []struct {
		name     string
		body     any
		errorMsg string
	}{
		{"Empty body", "", "the request body must not be empty"},
		{"Name missing", `[{ "targetAmount": "100", "deadline": "2025-06-01T00:00:00Z" }]`, "name is required"},
		{"Deadline missing", `[{ "name": "Bike", "targetAmount": "100" }]`, "deadline is required"},
		{"Unknown category", []v1.SavingsGoalEditable{{Name: "Bike", Category: "Toys", TargetAmount: decimal.NewFromInt(100), Deadline: time.Now()}}, models.ErrSavingsGoalCategory.Error()},
		{"Zero target", []v1.SavingsGoalEditable{{Name: "Bike", Deadline: time.Now()}}, models.ErrSavingsGoalTarget.Error()},
		{"Negative target", []v1.SavingsGoalEditable{{Name: "Bike", TargetAmount: decimal.NewFromInt(-5), Deadline: time.Now()}}, models.ErrSavingsGoalTarget.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, "http://example.com/v1/savings-goals", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.SavingsGoalCreateResponse
			test.DecodeResponse(t, &r, &response)

			if response.Error != nil {
				assert.Contains(t, *response.Error, tt.errorMsg)
				return
			}

			assert.Contains(t, *response.Data[0].Error, tt.errorMsg)
		})
	}
}

func (suite *TestSuiteStandard) TestSavingsGoalsGetSorted() {
	late := suite.createTestSavingsGoal(suite.T(), v1.SavingsGoalEditable{Name: "Car", Deadline: time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)})
	early := suite.createTestSavingsGoal(suite.T(), v1.SavingsGoalEditable{Name: "Bike", Deadline: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)})
	middle := suite.createTestSavingsGoal(suite.T(), v1.SavingsGoalEditable{Name: "Laptop", Category: "Major Purchase", Deadline: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)})

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/savings-goals", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SavingsGoalListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal(early.Data.ID, response.Data[0].ID)
	suite.Assert().Equal(middle.Data.ID, response.Data[1].ID)
	suite.Assert().Equal(late.Data.ID, response.Data[2].ID)
	suite.Assert().Len(response.Data[0].Milestones, 3)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/savings-goals?category=Major%20Purchase", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(middle.Data.ID, response.Data[0].ID)
}

func (suite *TestSuiteStandard) TestSavingsGoalsUpdate() {
	g := suite.createTestSavingsGoal(suite.T(), v1.SavingsGoalEditable{TargetAmount: decimal.NewFromInt(1000)})

	tests := []struct {
		name    string
		current int64
		reached []bool
		goal    bool
	}{
		{"First milestone", 250, []bool{true, false, false}, false},
		{"Between milestones", 700, []bool{true, true, false}, false},
		{"Target", 1000, []bool{true, true, true}, true},
		{"Back to zero", 0, []bool{false, false, false}, false},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			amount := decimal.NewFromInt(tt.current)
			r := suite.request(t, http.MethodPatch, g.Data.Links.Self, v1.SavingsGoalUpdate{CurrentAmount: &amount})
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.SavingsGoalResponse
			test.DecodeResponse(t, &r, &response)
			assert.True(t, amount.Equal(response.Data.CurrentAmount))
			assert.Equal(t, tt.goal, response.Data.Reached)

			// The milestones are persisted
			r = suite.request(t, http.MethodGet, g.Data.Links.Self, nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &response)

			for i, reached := range tt.reached {
				assert.Equal(t, reached, response.Data.Milestones[i].Reached, "milestone %d", response.Data.Milestones[i].Percentage)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestSavingsGoalsUpdateFails() {
	g := suite.createTestSavingsGoal(suite.T(), v1.SavingsGoalEditable{})
	negative := decimal.NewFromInt(-10)

	tests := []struct {
		name     string
		url      string
		body     any
		status   int
		errorMsg string
	}{
		{"Missing amount", g.Data.Links.Self, `{}`, http.StatusBadRequest, "currentAmount is required"},
		{"Negative amount", g.Data.Links.Self, v1.SavingsGoalUpdate{CurrentAmount: &negative}, http.StatusBadRequest, models.ErrAmountNegative.Error()},
		{"Not found", fmt.Sprintf("http://example.com/v1/savings-goals/%s", uuid.New()), `{ "currentAmount": "5" }`, http.StatusNotFound, "there is no savings goal matching your query"},
		{"Invalid ID", "http://example.com/v1/savings-goals/nope", `{ "currentAmount": "5" }`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPatch, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.SavingsGoalResponse
			test.DecodeResponse(t, &r, &response)
			assert.Contains(t, *response.Error, tt.errorMsg)
		})
	}
}

func (suite *TestSuiteStandard) TestSavingsGoalsContributions() {
	g := suite.createTestSavingsGoal(suite.T(), v1.SavingsGoalEditable{TargetAmount: decimal.NewFromInt(100)})

	var response v1.SavingsGoalResponse
	for _, amount := range []int64{20, 35} {
		a := decimal.NewFromInt(amount)
		r := suite.request(suite.T(), http.MethodPost, g.Data.Links.Contributions, v1.Contribution{Amount: &a})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
		test.DecodeResponse(suite.T(), &r, &response)
	}

	suite.Assert().True(decimal.NewFromInt(55).Equal(response.Data.CurrentAmount))
	suite.Assert().True(response.Data.Milestones[0].Reached)
	suite.Assert().True(response.Data.Milestones[1].Reached)
	suite.Assert().False(response.Data.Milestones[2].Reached)

	// Withdrawals are contributions with a negative amount
	withdrawal := decimal.NewFromInt(-30)
	r := suite.request(suite.T(), http.MethodPost, g.Data.Links.Contributions, v1.Contribution{Amount: &withdrawal})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.NewFromInt(25).Equal(response.Data.CurrentAmount))
	suite.Assert().False(response.Data.Milestones[1].Reached)

	// The saved amount cannot become negative
	r = suite.request(suite.T(), http.MethodPost, g.Data.Links.Contributions, v1.Contribution{Amount: &withdrawal})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(suite.T(), http.MethodPost, g.Data.Links.Contributions, `{ "amount": "0" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("the contribution amount must not be zero", *response.Error)

	r = suite.request(suite.T(), http.MethodOptions, g.Data.Links.Contributions, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestSavingsGoalsDelete() {
	g := suite.createTestSavingsGoal(suite.T(), v1.SavingsGoalEditable{})
	other := test.Bearer(signup(suite.T(), "").Token)

	r := test.Request(suite.T(), http.MethodDelete, g.Data.Links.Self, nil, other)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(suite.T(), http.MethodOptions, g.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))

	r = suite.request(suite.T(), http.MethodDelete, g.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Milestone{}).Where("savings_goal_id = ?", g.Data.ID).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)

	r = suite.request(suite.T(), http.MethodGet, g.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSavingsCategories() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/savings-categories", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SavingsCategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.SavingsCategories, response.Data)

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/savings-categories", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}
