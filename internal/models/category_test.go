package models_test

import (
	"strings"
	"testing"

	"github.com/pocket-ledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	user := suite.createTestUser(models.User{})

	name := "\t Groceries  "
	category := suite.createTestCategory(models.Category{UserID: user.ID, Name: name})

	assert.Equal(suite.T(), strings.TrimSpace(name), category.Name)
	assert.Equal(suite.T(), models.DefaultCategoryColor, category.Color)
}

func (suite *TestSuiteStandard) TestCategoryColor() {
	user := suite.createTestUser(models.User{})

	tests := []struct {
		color string
		want  string
		err   error
	}{
		{"#FF00aa", "#ff00aa", nil},
		{"", models.DefaultCategoryColor, nil},
		{"red", "", models.ErrCategoryColorInvalid},
		{"#fff", "", models.ErrCategoryColorInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.color, func(t *testing.T) {
			c := models.Category{UserID: user.ID, Name: "Color " + tt.color, Color: tt.color}
			err := models.DB.Create(&c).Error
			assert.ErrorIs(t, err, tt.err)

			if tt.err == nil {
				assert.Equal(t, tt.want, c.Color)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryNameUniquePerUser() {
	alice := suite.createTestUser(models.User{})
	bob := suite.createTestUser(models.User{})

	_ = suite.createTestCategory(models.Category{UserID: alice.ID, Name: "Food"})

	// Same name for another user works
	_ = suite.createTestCategory(models.Category{UserID: bob.ID, Name: "Food"})

	err := models.DB.Create(&models.Category{UserID: alice.ID, Name: "Food"}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)
}

func (suite *TestSuiteStandard) TestCategoryNameEmpty() {
	user := suite.createTestUser(models.User{})

	err := models.DB.Create(&models.Category{UserID: user.ID, Name: "   "}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameEmpty)
}
