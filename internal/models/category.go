package models

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCategoryColor is used when no color is set for a category.
const DefaultCategoryColor = "#000000"

var hexColor = regexp.MustCompile("^#[0-9a-f]{6}$")

// Category is a label for expenses.
type Category struct {
	DefaultModel
	User   User      `gorm:"constraint:OnDelete:CASCADE"`
	UserID uuid.UUID `gorm:"uniqueIndex:category_user_name"`
	Name   string    `gorm:"uniqueIndex:category_user_name"`
	Color  string
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))

	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}

	if !hexColor.MatchString(c.Color) {
		return ErrCategoryColorInvalid
	}

	return nil
}
