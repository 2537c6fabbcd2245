package budget

import (
	"time"

	"github.com/pocket-ledger/backend/internal/types"
)

// WindowStart returns the inclusive start of the current window for the period.
//
// Windows start at midnight in now's location. Weeks start on Sunday.
// For a period that is not valid, now is returned unchanged.
func WindowStart(period types.Period, now time.Time) time.Time {
	year, month, day := now.Date()

	switch period {
	case types.PeriodDaily:
		return time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	case types.PeriodWeekly:
		return time.Date(year, month, day-int(now.Weekday()), 0, 0, 0, 0, now.Location())
	case types.PeriodMonthly:
		return time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	}

	return now
}
