// Package schedule resolves business hours and holiday status for the days
// that appear on a rendered month, including the weekend spillover cells from
// the adjacent months.
package schedule

import (
	"github.com/username/shop-calendar/internal/grid"
	"github.com/username/shop-calendar/pkg/dateutil"
)

type dayKey struct {
	Offset grid.MonthOffset
	Day    int
}

// Resolver answers hours and holiday lookups keyed by (month offset, day).
// The three per-month mappings from the configuration are collapsed into one
// table at construction; the absent-vs-present semantics of each offset are
// preserved exactly.
type Resolver struct {
	hours    map[dayKey]string
	holidays map[dayKey]bool
}

// NewResolver builds a Resolver from the per-month schedule maps and holiday
// day lists. Map keys are day numbers of their respective month.
func NewResolver(current, prev, next map[int]string, holidays, prevHolidays, nextHolidays []int) *Resolver {
	r := &Resolver{
		hours:    make(map[dayKey]string),
		holidays: make(map[dayKey]bool),
	}

	for day, h := range current {
		r.hours[dayKey{grid.OffsetCurrent, day}] = h
	}
	for day, h := range prev {
		r.hours[dayKey{grid.OffsetPrev, day}] = h
	}
	for day, h := range next {
		r.hours[dayKey{grid.OffsetNext, day}] = h
	}

	for _, day := range holidays {
		r.holidays[dayKey{grid.OffsetCurrent, day}] = true
	}
	for _, day := range prevHolidays {
		r.holidays[dayKey{grid.OffsetPrev, day}] = true
	}
	for _, day := range nextHolidays {
		r.holidays[dayKey{grid.OffsetNext, day}] = true
	}

	return r
}

// HoursFor returns the recorded hours string for the day and whether an entry
// exists. For a current-month day a missing entry means the shop is closed;
// for adjacent-month fill cells it means there is simply nothing to show.
func (r *Resolver) HoursFor(day int, offset grid.MonthOffset) (string, bool) {
	h, ok := r.hours[dayKey{offset, day}]
	return h, ok
}

// IsHoliday reports whether the day is a listed holiday for its month.
func (r *Resolver) IsHoliday(day int, offset grid.MonthOffset) bool {
	return r.holidays[dayKey{offset, day}]
}

// Highlighted reports whether the cell gets the weekend/holiday accent color:
// Saturday or Sunday columns, or any listed holiday, regardless of offset.
func (r *Resolver) Highlighted(col, day int, offset grid.MonthOffset) bool {
	return dateutil.IsWeekendColumn(col) || r.IsHoliday(day, offset)
}
