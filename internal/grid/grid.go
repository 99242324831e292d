package grid

import (
	"time"

	"github.com/username/shop-calendar/pkg/dateutil"
)

// MonthOffset classifies a grid cell as belonging to the previous, current or
// next calendar month relative to the rendered month.
type MonthOffset int

const (
	OffsetPrev    MonthOffset = -1
	OffsetCurrent MonthOffset = 0
	OffsetNext    MonthOffset = 1
)

// Cell is a single day slot in the month grid.
type Cell struct {
	Day    int
	Offset MonthOffset
}

// Week is one calendar row, indexed Monday(0) through Sunday(6).
type Week [7]Cell

// Grid is the full month layout: 5 or 6 complete weeks covering the month
// plus boundary fill from the adjacent months.
type Grid []Week

// Build constructs the grid for the given month. The leading slots of the
// first week are filled with the tail of the previous month and the final
// week is padded with the head of the next month until the cell count is a
// multiple of 7. The caller must ensure month is in [1,12].
func Build(year int, month time.Month) Grid {
	firstDow := dateutil.FirstWeekday(year, month)
	numDays := dateutil.DaysInMonth(year, month)

	prevYear, prevMonth := dateutil.PrevMonth(year, month)
	prevDays := dateutil.DaysInMonth(prevYear, prevMonth)

	cells := make([]Cell, 0, 42)

	for i := 0; i < firstDow; i++ {
		cells = append(cells, Cell{Day: prevDays - firstDow + 1 + i, Offset: OffsetPrev})
	}
	for d := 1; d <= numDays; d++ {
		cells = append(cells, Cell{Day: d, Offset: OffsetCurrent})
	}
	for d := 1; len(cells)%7 != 0; d++ {
		cells = append(cells, Cell{Day: d, Offset: OffsetNext})
	}

	g := make(Grid, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		var w Week
		copy(w[:], cells[i:i+7])
		g = append(g, w)
	}

	return g
}

// WeekendVisibility decides whether adjacent-month weekend cells should be
// drawn at all.
//
// The previous month's Saturday is shown only when the month starts on a
// Sunday, so the leading cell completes a weekend pair. The next month's
// weekend is shown only when the month ends on a Friday or Saturday; if the
// month ends Sunday through Thursday the trailing weekend is too far away
// and stays hidden even though the raw grid contains those cells.
func WeekendVisibility(year int, month time.Month) (showPrev, showNext bool) {
	firstDow := dateutil.FirstWeekday(year, month)
	lastDow := dateutil.LastWeekday(year, month)

	showPrev = firstDow == 6
	showNext = lastDow == 4 || lastDow == 5
	return showPrev, showNext
}

// ShouldShowCell reports whether the cell in the given column renders at all.
// Current-month cells always render; adjacent-month cells render only on
// weekend columns and only when the matching visibility flag is set. A hidden
// cell occupies no visual space but keeps its slot in the grid.
func ShouldShowCell(col int, offset MonthOffset, showPrev, showNext bool) bool {
	if offset == OffsetCurrent {
		return true
	}
	if !dateutil.IsWeekendColumn(col) {
		return false
	}
	switch offset {
	case OffsetPrev:
		return showPrev
	case OffsetNext:
		return showNext
	}
	return false
}
