package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/auth"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMiddleware() {
	r, err := suite.service.Signup(models.DB, "middleware@example.com", "password1", "")
	suite.Require().Nil(err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"No header", "", http.StatusUnauthorized},
		{"Wrong scheme", "Basic " + r.Token, http.StatusUnauthorized},
		{"Invalid token", "Bearer nope", http.StatusUnauthorized},
		{"Valid", "Bearer " + r.Token, http.StatusOK},
		{"Lowercase scheme", "bearer " + r.Token, http.StatusOK},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, engine := gin.CreateTestContext(w)

			engine.GET("/", auth.Inject(suite.service), auth.Middleware(suite.service), func(c *gin.Context) {
				assert.Equal(t, r.User.ID, auth.UserID(c))
				assert.Equal(t, suite.service, auth.FromContext(c))
				c.Status(http.StatusOK)
			})

			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}
