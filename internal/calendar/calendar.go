// Package calendar implements proleptic Gregorian leap-year and
// month-length arithmetic for years 1 through 9999.
package calendar

import (
	"fmt"

	tt "github.com/gnolang/daysin/internal/types"
)

const (
	MinYear = 1
	MaxYear = 9999
)

var (
	ErrInvalidYear  = fmt.Errorf("%w: year must be in [%d, %d]", tt.ErrInvalidInput, MinYear, MaxYear)
	ErrInvalidMonth = fmt.Errorf("%w: month must be in [1, 12]", tt.ErrInvalidInput)
)

// monthLengths holds the non-leap length of each month, January first.
var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a leap year.
// Years outside [MinYear, MaxYear] return ErrInvalidYear.
func IsLeapYear(year int) (bool, error) {
	if err := validateYear(year); err != nil {
		return false, err
	}
	return isLeap(year), nil
}

// DaysInMonth returns the number of days in the given month (1-12) of year.
func DaysInMonth(month, year int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w, got %d", ErrInvalidMonth, month)
	}
	if err := validateYear(year); err != nil {
		return 0, err
	}
	return monthLength(month, isLeap(year)), nil
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) (int, error) {
	leap, err := IsLeapYear(year)
	if err != nil {
		return 0, err
	}
	if leap {
		return 366, nil
	}
	return 365, nil
}

// MonthLengths returns the length of every month of year.
func MonthLengths(year int) ([12]int, error) {
	var out [12]int
	leap, err := IsLeapYear(year)
	if err != nil {
		return out, err
	}
	for i := range out {
		out[i] = monthLength(i+1, leap)
	}
	return out, nil
}

func monthLength(month int, leap bool) int {
	n := monthLengths[month-1]
	if month == 2 && leap {
		n++
	}
	return n
}

func isLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func validateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w, got %d", ErrInvalidYear, year)
	}
	return nil
}
