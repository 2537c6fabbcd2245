package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/pocket-ledger/backend/internal/controllers/v1"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAuthSignup() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/signup", v1.SignupEditable{
		Email:    "  Jane@Example.com ",
		Password: "long enough password",
		Currency: "eur",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("jane@example.com", response.Data.User.Email)
	suite.Assert().Equal("jane@example.com", response.Data.User.Username, "the email is the username")
	suite.Assert().Equal("EUR", response.Data.User.Currency)
	suite.Assert().NotEmpty(response.Data.Token)
	suite.Assert().True(response.Data.ExpiresAt.After(response.Data.User.CreatedAt))
}

func (suite *TestSuiteStandard) TestAuthSignupFails() {
	signup(suite.T(), "taken@example.com")

	tests := []struct {
		name  string
		body  any
		error string
	}{
		{"Broken JSON", `{ "email": "jane@example.com"`, httputil.ErrInvalidBody.Error()},
		{"Email missing", v1.SignupEditable{Password: "long enough password"}, "email is required"},
		{"Email blank", `{ "email": "   ", "password": "long enough password" }`, "email is required"},
		{"Email invalid", v1.SignupEditable{Email: "not an email", Password: "long enough password"}, "email"},
		{"Password too short", v1.SignupEditable{Email: "short@example.com", Password: "short"}, "password"},
		{"Currency invalid", v1.SignupEditable{Email: "currency@example.com", Password: "long enough password", Currency: "NOPE"}, models.ErrCurrencyInvalid.Error()},
		{"Email taken", v1.SignupEditable{Email: "TAKEN@example.com", Password: "long enough password"}, models.ErrUserEmailNotUnique.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/signup", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.SessionResponse
			test.DecodeResponse(t, &r, &response)
			assert.Contains(t, *response.Error, tt.error)
		})
	}
}

func (suite *TestSuiteStandard) TestAuthLogin() {
	signup(suite.T(), "login@example.com")

	tests := []struct {
		name     string
		email    string
		password string
		status   int
	}{
		{"Correct credentials", "login@example.com", "long enough password", http.StatusOK},
		{"Email is case insensitive", "LOGIN@example.com", "long enough password", http.StatusOK},
		{"Wrong password", "login@example.com", "wrong password", http.StatusUnauthorized},
		{"Unknown user", "nobody@example.com", "long enough password", http.StatusUnauthorized},
		{"Password missing", "login@example.com", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/login", v1.Credentials{
				Email:    tt.email,
				Password: tt.password,
			})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.SessionResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status == http.StatusOK {
				assert.NotEmpty(t, response.Data.Token)
				return
			}

			assert.NotNil(t, response.Error)
		})
	}
}

// TestAuthUserAndLogout verifies that a token stops working after logout.
func (suite *TestSuiteStandard) TestAuthUserAndLogout() {
	session := signup(suite.T(), "logout@example.com")
	headers := test.Bearer(session.Token)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/auth/user", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var user v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &user)
	suite.Assert().Equal(session.User.ID, user.Data.ID)
	suite.Assert().Equal("logout@example.com", user.Data.Email)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/logout", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/auth/user", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	// Other sessions are not affected
	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/auth/user", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

// TestAuthRequired verifies that resource endpoints need a valid token.
func (suite *TestSuiteStandard) TestAuthRequired() {
	paths := []string{
		"/v1/auth/user",
		"/v1/categories",
		"/v1/expenses",
		"/v1/budget-limits",
		"/v1/budget-warnings",
		"/v1/savings-goals",
	}

	headers := []struct {
		name   string
		header map[string]string
	}{
		{"No header", map[string]string{}},
		{"Not a bearer token", map[string]string{"Authorization": "Basic dXNlcjpwYXNz"}},
		{"Garbage token", test.Bearer("not.a.token")},
	}

	for _, path := range paths {
		for _, h := range headers {
			suite.T().Run(h.name+" "+path, func(t *testing.T) {
				r := test.Request(t, http.MethodGet, "http://example.com"+path, nil, h.header)
				test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
			})
		}
	}
}

func (suite *TestSuiteStandard) TestAuthOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/v1/auth/signup", "OPTIONS, POST"},
		{"/v1/auth/login", "OPTIONS, POST"},
		{"/v1/auth/logout", "OPTIONS, POST"},
		{"/v1/auth/user", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com"+tt.path, nil)
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}
