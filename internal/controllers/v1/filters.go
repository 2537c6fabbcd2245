package v1

import (
	"fmt"
	"slices"

	"gorm.io/gorm"
)

// stringFilter filters column for a substring.
//
// When the parameter is set to the empty string, only resources where the
// column is empty match.
func stringFilter(query *gorm.DB, setFields []string, field, column, value string) *gorm.DB {
	if value != "" {
		return query.Where(fmt.Sprintf("%s LIKE ?", column), fmt.Sprintf("%%%s%%", value))
	}

	if slices.Contains(setFields, field) {
		return query.Where(fmt.Sprintf("%s = ''", column))
	}

	return query
}
