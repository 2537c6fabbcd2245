package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrAmountNegative   = errors.New("amounts must not be negative")
)

var (
	ErrReferenceInvalid      = errors.New("a resource ID you specified does not identify an existing resource")
	ErrUserEmailNotUnique    = errors.New("a user with this email address already exists")
	ErrCurrencyInvalid       = errors.New("the currency must be an ISO 4217 currency code")
	ErrCategoryNameNotUnique = errors.New("the category name must be unique")
	ErrCategoryNameEmpty     = errors.New("the category name must not be empty")
	ErrCategoryColorInvalid  = errors.New("the color must be a hex color in the format #rrggbb")
	ErrSavingsGoalCategory   = errors.New("the category of a savings goal must be one of the preset savings categories")
	ErrSavingsGoalTarget     = errors.New("the target amount of a savings goal must be larger than zero")
)
