package v1

import (
	"slices"

	ez_uuid "github.com/pocket-ledger/backend/internal/uuid"
	"gorm.io/gorm"
)

// DefaultLimit is the number of resources returned by list endpoints
// when no limit is requested.
const DefaultLimit = 50

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// limit returns the requested limit or the DefaultLimit if none was requested.
func limit(setFields []string, requested int) int {
	if slices.Contains(setFields, "Limit") {
		return requested
	}

	return DefaultLimit
}

// paginate counts all resources matching the query and loads the
// requested page into dest.
func paginate(q *gorm.DB, model, dest any, offset uint, limit int) (int64, error) {
	q = q.Session(&gorm.Session{})

	var count int64
	err := q.Model(model).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, q.Offset(int(offset)).Limit(limit).Find(dest).Error
}
