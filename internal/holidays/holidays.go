// Package holidays carries the Japanese national holiday table used to
// pre-fill month configurations. The table is static data and needs a yearly
// update; months without data return an empty list.
package holidays

import "time"

var japanHolidays = map[int]map[time.Month][]int{
	2026: {
		time.January:   {1, 12},        // 元日, 成人の日
		time.February:  {11, 23},       // 建国記念の日, 天皇誕生日
		time.March:     {20},           // 春分の日
		time.April:     {29},           // 昭和の日
		time.May:       {3, 4, 5, 6},   // 憲法記念日, みどりの日, こどもの日, 振替休日
		time.July:      {20},           // 海の日
		time.August:    {11},           // 山の日
		time.September: {21, 22, 23},   // 敬老の日, 国民の休日, 秋分の日
		time.October:   {12},           // スポーツの日
		time.November:  {3, 23},        // 文化の日, 勤労感謝の日
	},
	2027: {
		time.January:   {1, 11},
		time.February:  {11, 23},
		time.March:     {21},
		time.April:     {29},
		time.May:       {3, 4, 5},
		time.July:      {19},
		time.August:    {11},
		time.September: {20, 23},
		time.October:   {11},
		time.November:  {3, 23},
	},
}

// ForMonth returns the national holiday day numbers for the given month, or
// nil when the table has no data for that year.
func ForMonth(year int, month time.Month) []int {
	months, ok := japanHolidays[year]
	if !ok {
		return nil
	}
	days := months[month]
	out := make([]int, len(days))
	copy(out, days)
	return out
}

// HasYear reports whether holiday data exists for the year, so callers can
// tell "no holidays this month" apart from "no data for this year".
func HasYear(year int) bool {
	_, ok := japanHolidays[year]
	return ok
}
