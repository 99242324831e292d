package render

import (
	"github.com/username/shop-calendar/internal/config"
	"github.com/username/shop-calendar/internal/grid"
)

// EventSpan is the portion of an event that lands on one grid row: the week
// index plus the first and last column the event's days occupy there.
type EventSpan struct {
	Week     int
	StartCol int
	EndCol   int
}

// EventSpans maps an event's day range onto grid columns. Only current-month
// cells count; an event crossing a week boundary yields one span per week it
// touches, each positioned independently.
func EventSpans(ev config.Event, g grid.Grid) []EventSpan {
	var spans []EventSpan

	for weekIdx, week := range g {
		startCol, endCol := -1, -1
		for col, cell := range week {
			if cell.Offset != grid.OffsetCurrent {
				continue
			}
			if cell.Day < ev.Start || cell.Day > ev.End {
				continue
			}
			if startCol == -1 {
				startCol = col
			}
			endCol = col
		}
		if startCol != -1 {
			spans = append(spans, EventSpan{Week: weekIdx, StartCol: startCol, EndCol: endCol})
		}
	}

	return spans
}

// WrapLabel breaks text into lines that fit maxWidth, measured by the given
// function. Characters accumulate greedily; the character that overflows the
// line starts the next one. Japanese labels have no word boundaries, so the
// wrap is per character rather than per word.
func WrapLabel(text string, maxWidth int, measure func(string) int) []string {
	var lines []string
	current := ""

	for _, r := range text {
		test := current + string(r)
		if measure(test) > maxWidth && current != "" {
			lines = append(lines, current)
			current = string(r)
		} else {
			current = test
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	return lines
}
