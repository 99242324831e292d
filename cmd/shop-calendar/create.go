package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/username/shop-calendar/internal/config"
	"github.com/username/shop-calendar/internal/holidays"
	"github.com/username/shop-calendar/pkg/dateutil"
)

const defaultBottomText = "ご予約は 055-957-4500 / 070-8419-5489 にて承ります"

func createCmd() *cobra.Command {
	var (
		quick        bool
		year         int
		month        int
		scheduleText string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Set up a month's config interactively and render it",
		Long:  "Prompt for the month's business schedule, pre-fill Japanese national holidays, write config.json and render the calendar image",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg *config.Config
			var err error

			if quick {
				if year == 0 || month == 0 || scheduleText == "" {
					return fmt.Errorf("--quick requires --year, --month and --schedule")
				}
				cfg, err = buildQuickConfig(year, month, scheduleText)
			} else {
				cfg, err = interactiveCreate(bufio.NewScanner(os.Stdin))
			}
			if err != nil {
				return err
			}

			path := configPath
			if path == "" {
				path = "config.json"
			}
			if err := writeConfigFile(path, cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Printf("\n✓ %s updated\n", path)

			fmt.Println("\nrendering calendar image...")
			out, err := generate(cfg)
			if err != nil {
				return err
			}
			fmt.Printf("✓ done: %s\n", out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&quick, "quick", false, "Build the config from flags without prompting")
	cmd.Flags().IntVar(&year, "year", 0, "Year (quick mode)")
	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (quick mode)")
	cmd.Flags().StringVar(&scheduleText, "schedule", "", `Schedule entries, e.g. "1 15-21, 2 17-21" (quick mode)`)

	return cmd
}

func buildQuickConfig(year, month int, scheduleText string) (*config.Config, error) {
	cfg := &config.Config{
		Year:              year,
		Month:             month,
		Schedule:          config.ParseScheduleText(scheduleText),
		PrevMonthSchedule: map[string]string{},
		NextMonthSchedule: map[string]string{},
		Holidays:          holidays.ForMonth(year, time.Month(month)),
		BottomText:        defaultBottomText,
		OutputFilename:    fmt.Sprintf("calendar_%d_%02d.png", year, month),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func interactiveCreate(in *bufio.Scanner) (*config.Config, error) {
	fmt.Println("╔══════════════════════════════════════════╗")
	fmt.Println("║  カレンダー画像 - 月次設定               ║")
	fmt.Println("╚══════════════════════════════════════════╝")

	// Default to next month.
	now := time.Now()
	defYear, defMonth := dateutil.NextMonth(now.Year(), now.Month())

	year := promptInt(in, fmt.Sprintf("\n年 [%d]: ", defYear), defYear)
	month := promptInt(in, fmt.Sprintf("月 [%d]: ", int(defMonth)), int(defMonth))
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be in [1,12], got %d", month)
	}

	printMonthPreview(year, time.Month(month))

	fmt.Println("営業スケジュールを入力してください。")
	fmt.Println("形式: 日 時間 （1行に1つ、空行で入力終了）")
	fmt.Println("例:")
	fmt.Println("  1  15-21")
	fmt.Println("  2  17-21")
	fmt.Println()

	var lines []string
	for {
		fmt.Print("  > ")
		if !in.Scan() {
			break
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			if len(lines) > 0 {
				break
			}
			continue
		}
		lines = append(lines, line)
	}
	sched := config.ParseScheduleText(strings.Join(lines, "\n"))
	fmt.Printf("\n✓ %d日分の営業日を登録しました: %v\n", len(sched), config.ScheduleKeys(sched))

	holidayDays := confirmHolidays(in, year, time.Month(month))

	prevSched := promptAdjacentWeekends(in, year, time.Month(month))
	nextSched := promptNextWeekends(in, year, time.Month(month))

	cfg := &config.Config{
		Year:              year,
		Month:             month,
		Schedule:          sched,
		PrevMonthSchedule: prevSched,
		NextMonthSchedule: nextSched,
		Holidays:          holidayDays,
		BottomText:        defaultBottomText,
		OutputFilename:    fmt.Sprintf("calendar_%d_%02d.png", year, month),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// printMonthPreview writes a Monday-first text month to stdout with weekends
// and holidays starred.
func printMonthPreview(year int, month time.Month) {
	fmt.Printf("\n%s\n", strings.Repeat("=", 50))
	fmt.Printf("  %d年 %d月\n", year, int(month))
	fmt.Println(strings.Repeat("=", 50))

	firstDow := dateutil.FirstWeekday(year, month)
	numDays := dateutil.DaysInMonth(year, month)
	holidayDays := holidays.ForMonth(year, month)
	isHoliday := make(map[int]bool, len(holidayDays))
	for _, d := range holidayDays {
		isHoliday[d] = true
	}

	fmt.Println("  月   火   水   木   金   土   日")
	fmt.Print("  " + strings.Repeat("     ", firstDow))

	for d := 1; d <= numDays; d++ {
		dow := (firstDow + d - 1) % 7
		marker := " "
		if isHoliday[d] || dateutil.IsWeekendColumn(dow) {
			marker = "*"
		}
		fmt.Printf(" %2d%s ", d, marker)
		if dow == 6 {
			fmt.Println()
		}
	}
	fmt.Println()

	if len(holidayDays) > 0 {
		names := make([]string, len(holidayDays))
		for i, d := range holidayDays {
			names[i] = strconv.Itoa(d) + "日"
		}
		fmt.Printf("  祝日: %s\n", strings.Join(names, ", "))
	}
	fmt.Println()
}

// confirmHolidays shows the built-in holiday list for the month and lets the
// user accept, replace, or enter one when no table data exists.
func confirmHolidays(in *bufio.Scanner, year int, month time.Month) []int {
	days := holidays.ForMonth(year, month)

	if len(days) > 0 {
		names := make([]string, len(days))
		for i, d := range days {
			names[i] = strconv.Itoa(d) + "日"
		}
		fmt.Printf("\n祝日（自動検出）: %s\n", strings.Join(names, ", "))
		answer := strings.ToLower(prompt(in, "この祝日で合っていますか？ [Y/n]: "))
		if answer != "n" {
			return days
		}
		return parseDayList(prompt(in, "祝日を入力 (カンマ区切り、例: 20,23): "))
	}

	if holidays.HasYear(year) {
		return nil
	}
	fmt.Printf("\n%d年%d月の祝日データがありません。\n", year, int(month))
	return parseDayList(prompt(in, "祝日を入力 (カンマ区切り、空欄でスキップ): "))
}

// promptAdjacentWeekends asks for hours on the previous month's weekend days
// that will appear at the head of the grid.
func promptAdjacentWeekends(in *bufio.Scanner, year int, month time.Month) map[string]string {
	sched := map[string]string{}

	firstDow := dateutil.FirstWeekday(year, month)
	if firstDow == 0 {
		return sched
	}

	prevYear, prevMonth := dateutil.PrevMonth(year, month)
	prevDays := dateutil.DaysInMonth(prevYear, prevMonth)

	var weekendDays []int
	for i := 0; i < firstDow; i++ {
		if dateutil.IsWeekendColumn(i) {
			weekendDays = append(weekendDays, prevDays-firstDow+1+i)
		}
	}
	if len(weekendDays) == 0 {
		return sched
	}

	fmt.Printf("\n前月の週末日がカレンダーに表示されます: %v\n", weekendDays)
	for _, d := range weekendDays {
		hours := prompt(in, fmt.Sprintf("  前月 %d日 の営業時間 [15-21]: ", d))
		if hours == "" {
			hours = "15-21"
		}
		sched[strconv.Itoa(d)] = hours
	}
	return sched
}

// promptNextWeekends asks for hours on the next month's weekend days that
// will appear at the tail of the grid.
func promptNextWeekends(in *bufio.Scanner, year int, month time.Month) map[string]string {
	sched := map[string]string{}

	lastDow := dateutil.LastWeekday(year, month)
	if lastDow == 6 {
		return sched
	}

	var weekendDays []int
	for i := 1; i <= 6-lastDow; i++ {
		if dateutil.IsWeekendColumn((lastDow + i) % 7) {
			weekendDays = append(weekendDays, i)
		}
	}
	if len(weekendDays) == 0 {
		return sched
	}

	fmt.Printf("\n翌月の週末日がカレンダーに表示されます: %v\n", weekendDays)
	for _, d := range weekendDays {
		hours := prompt(in, fmt.Sprintf("  翌月 %d日 の営業時間 [15-21]: ", d))
		if hours == "" {
			hours = "15-21"
		}
		sched[strconv.Itoa(d)] = hours
	}
	return sched
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func promptInt(in *bufio.Scanner, label string, def int) int {
	answer := prompt(in, label)
	if answer == "" {
		return def
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return def
	}
	return n
}

func parseDayList(s string) []int {
	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if d, err := strconv.Atoi(part); err == nil {
			days = append(days, d)
		}
	}
	return days
}

// writeConfigFile persists the config as JSON with the same field names the
// loader reads back.
func writeConfigFile(path string, cfg *config.Config) error {
	doc := map[string]interface{}{
		"year":                cfg.Year,
		"month":               cfg.Month,
		"schedule":            cfg.Schedule,
		"prev_month_schedule": cfg.PrevMonthSchedule,
		"next_month_schedule": cfg.NextMonthSchedule,
		"holidays":            intsOrEmpty(cfg.Holidays),
		"prev_month_holidays": intsOrEmpty(cfg.PrevMonthHolidays),
		"next_month_holidays": intsOrEmpty(cfg.NextMonthHolidays),
		"bottom_text":         cfg.BottomText,
		"output_filename":     cfg.OutputFilename,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func intsOrEmpty(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}
