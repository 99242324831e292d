package dateutil

import "time"

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of day 1 of the month, Monday-indexed
// (0=Monday .. 6=Sunday).
func FirstWeekday(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return MondayIndex(first.Weekday())
}

// LastWeekday returns the weekday of the last day of the month,
// Monday-indexed (0=Monday .. 6=Sunday).
func LastWeekday(year int, month time.Month) int {
	return (FirstWeekday(year, month) + DaysInMonth(year, month) - 1) % 7
}

// MondayIndex converts a time.Weekday (Sunday=0) to Monday-first indexing
// (Monday=0 .. Sunday=6).
func MondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// IsWeekendColumn returns true for the Saturday and Sunday columns of a
// Monday-first week (5 and 6).
func IsWeekendColumn(col int) bool {
	return col >= 5
}

// PrevMonth returns the year and month immediately before the given month.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// NextMonth returns the year and month immediately after the given month.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// IsLeapYear reports whether the year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
