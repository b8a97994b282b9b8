package market

import (
	"errors"
	"time"
)

// ErrUnknownDayCounter indicates a DayCounter value outside the defined set.
var ErrUnknownDayCounter = errors.New("market: unknown day-count convention")

// DayCounter selects a calendar-date to year-fraction convention.
//
// Actual365Fixed — actual elapsed days over a fixed 365-day year (default).
// Actual360      — actual elapsed days over a 360-day year.
type DayCounter int

const (
	// Actual365Fixed divides actual elapsed days by 365.
	Actual365Fixed DayCounter = iota

	// Actual360 divides actual elapsed days by 360.
	Actual360
)

const (
	hoursPerDay    = 24.0
	act365Denom    = 365.0
	act360Denom    = 360.0
	dayCounterName = "Actual/365 (Fixed)"
)

// String returns the conventional market name of the day counter.
func (dc DayCounter) String() string {
	switch dc {
	case Actual365Fixed:
		return dayCounterName
	case Actual360:
		return "Actual/360"
	default:
		return "Unknown"
	}
}

// valid reports whether dc is one of the defined conventions.
func (dc DayCounter) valid() bool {
	return dc == Actual365Fixed || dc == Actual360
}

// YearFraction converts the interval [start, end] into a year fraction under
// the convention. A negative fraction is returned when end precedes start;
// no validation is performed (caller contract, as with all time coordinates
// in this module).
func (dc DayCounter) YearFraction(start, end time.Time) float64 {
	days := end.Sub(start).Hours() / hoursPerDay
	if dc == Actual360 {
		return days / act360Denom
	}
	return days / act365Denom
}
