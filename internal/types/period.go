// Package types implements special types for Pocket Ledger.
package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrPeriodInvalid is returned for any period that is not one of the known periods.
var ErrPeriodInvalid = errors.New("the period must be one of 'daily', 'weekly' or 'monthly'")

// Period is the recurring accounting window of a budget limit.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Periods lists all valid periods.
var Periods = []Period{PeriodDaily, PeriodWeekly, PeriodMonthly}

// ParsePeriod parses a period keyword. Matching is case-insensitive
// and ignores surrounding whitespace.
func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w, got '%s'", ErrPeriodInvalid, s)
	}

	return p, nil
}

// Valid reports whether p is one of the known periods.
func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}

	return false
}

func (p Period) String() string {
	return string(p)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// An empty string or null leaves the period unset.
func (p *Period) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == "" {
		*p = ""
		return nil
	}

	parsed, err := ParsePeriod(s)
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler for query parameters.
func (p *Period) UnmarshalParam(param string) error {
	if param == "" {
		*p = ""
		return nil
	}

	parsed, err := ParsePeriod(param)
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}

// Scan writes the value from the database.
func (p *Period) Scan(value any) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case nil:
		*p = ""
		return nil
	default:
		return fmt.Errorf("cannot scan %T into a period", value)
	}

	parsed, err := ParsePeriod(s)
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}

// Value returns the value for the SQL driver to write to the database.
// Invalid periods are never written.
func (p Period) Value() (driver.Value, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w, got '%s'", ErrPeriodInvalid, string(p))
	}

	return string(p), nil
}

// GormDataType defines the data type used by gorm the type.
func (Period) GormDataType() string {
	return "text"
}
