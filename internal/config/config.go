// Package config loads the calendar configuration from a JSON file, applying
// the built-in sample defaults for any field the file leaves out.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/username/shop-calendar/pkg/dateutil"
)

// Config represents one month's calendar configuration.
type Config struct {
	Year  int `mapstructure:"year"`
	Month int `mapstructure:"month"`

	// Business hours keyed by day number (string, since they are JSON
	// object keys). Days missing from Schedule render as closed.
	Schedule          map[string]string `mapstructure:"schedule"`
	PrevMonthSchedule map[string]string `mapstructure:"prev_month_schedule"`
	NextMonthSchedule map[string]string `mapstructure:"next_month_schedule"`

	Holidays          []int `mapstructure:"holidays"`
	PrevMonthHolidays []int `mapstructure:"prev_month_holidays"`
	NextMonthHolidays []int `mapstructure:"next_month_holidays"`

	Events []Event `mapstructure:"events"`

	LatinFont       string `mapstructure:"latin_font"`
	LatinFontBold   string `mapstructure:"latin_font_bold"`
	LatinFontMedium string `mapstructure:"latin_font_medium"`
	DateFont        string `mapstructure:"date_font"`
	JapaneseFont    string `mapstructure:"japanese_font"`

	BottomText     string `mapstructure:"bottom_text"`
	OutputFilename string `mapstructure:"output_filename"`
}

// Event is a named day range shown as an outlined box on the calendar.
// Both days belong to the current month.
type Event struct {
	Start int    `mapstructure:"start"`
	End   int    `mapstructure:"end"`
	Name  string `mapstructure:"name"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("year", 2026)
	v.SetDefault("month", 3)
	v.SetDefault("holidays", []int{20})
	v.SetDefault("prev_month_holidays", []int{})
	v.SetDefault("next_month_holidays", []int{})
	v.SetDefault("latin_font", "/usr/share/fonts/truetype/google-fonts/Poppins-Regular.ttf")
	v.SetDefault("latin_font_bold", "/usr/share/fonts/truetype/google-fonts/Poppins-Bold.ttf")
	v.SetDefault("latin_font_medium", "/usr/share/fonts/truetype/google-fonts/Poppins-Medium.ttf")
	v.SetDefault("japanese_font", "/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf")
	v.SetDefault("bottom_text", "ご予約は 055-957-4500 / 070-8419-5489 にて承ります")
	v.SetDefault("output_filename", "")
}

// defaultSchedules applies the sample-month schedule maps for any map field
// the config file left unset. Viper deep-merges map defaults with file
// values, which would union the day keys of two different months, so these
// defaults are applied whole-map or not at all.
func defaultSchedules(v *viper.Viper, cfg *Config) {
	if !v.IsSet("schedule") {
		cfg.Schedule = map[string]string{
			"1": "15-21", "2": "17-21", "6": "17-22", "7": "15-21",
			"8": "15-21", "9": "17-21", "13": "17-22", "14": "15-21",
			"15": "15-21", "16": "17-21", "20": "17-22", "21": "15-21",
			"22": "15-21", "23": "17-21", "27": "17-22", "28": "15-21",
			"29": "15-21", "30": "17-21",
		}
	}
	if !v.IsSet("prev_month_schedule") {
		cfg.PrevMonthSchedule = map[string]string{"28": "15-21"}
	}
	if !v.IsSet("next_month_schedule") {
		cfg.NextMonthSchedule = map[string]string{"4": "15-21", "5": "15-21"}
	}
}

// Load loads configuration from the given JSON file. An empty path falls back
// to ./config.json; a missing file is not an error and yields the defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("json")
	} else {
		v.SetConfigName("config")
		v.SetConfigType("json")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	defaultSchedules(v, &cfg)
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// normalize fills derived defaults: an event without an end day spans just
// its start day.
func (c *Config) normalize() {
	for i := range c.Events {
		if c.Events[i].End == 0 {
			c.Events[i].End = c.Events[i].Start
		}
	}
}

// Validate checks the configuration invariants before rendering.
func (c *Config) Validate() error {
	if c.Year <= 0 {
		return fmt.Errorf("year must be positive, got %d", c.Year)
	}
	if c.Month < 1 || c.Month > 12 {
		return fmt.Errorf("month must be in [1,12], got %d", c.Month)
	}

	month := time.Month(c.Month)
	prevYear, prevMonth := dateutil.PrevMonth(c.Year, month)
	nextYear, nextMonth := dateutil.NextMonth(c.Year, month)

	checks := []struct {
		label    string
		schedule map[string]string
		holidays []int
		maxDay   int
	}{
		{"schedule", c.Schedule, c.Holidays, dateutil.DaysInMonth(c.Year, month)},
		{"prev_month_schedule", c.PrevMonthSchedule, c.PrevMonthHolidays, dateutil.DaysInMonth(prevYear, prevMonth)},
		{"next_month_schedule", c.NextMonthSchedule, c.NextMonthHolidays, dateutil.DaysInMonth(nextYear, nextMonth)},
	}

	for _, chk := range checks {
		for key := range chk.schedule {
			day, err := strconv.Atoi(key)
			if err != nil {
				return fmt.Errorf("%s: invalid day key %q", chk.label, key)
			}
			if day < 1 || day > chk.maxDay {
				return fmt.Errorf("%s: day %d outside [1,%d]", chk.label, day, chk.maxDay)
			}
		}
		for _, day := range chk.holidays {
			if day < 1 || day > chk.maxDay {
				return fmt.Errorf("%s holidays: day %d outside [1,%d]", chk.label, day, chk.maxDay)
			}
		}
	}

	numDays := dateutil.DaysInMonth(c.Year, month)
	for i, ev := range c.Events {
		if ev.Start < 1 || ev.Start > numDays {
			return fmt.Errorf("events[%d]: start day %d outside [1,%d]", i, ev.Start, numDays)
		}
		if ev.End < ev.Start || ev.End > numDays {
			return fmt.Errorf("events[%d]: end day %d outside [%d,%d]", i, ev.End, ev.Start, numDays)
		}
	}

	return nil
}

// ScheduleDays converts a day-string keyed schedule map into day-int keys.
// Validate has already rejected non-numeric keys.
func ScheduleDays(m map[string]string) map[int]string {
	out := make(map[int]string, len(m))
	for key, hours := range m {
		day, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		out[day] = hours
	}
	return out
}

// ScheduleKeys returns the schedule's day numbers in ascending order.
func ScheduleKeys(m map[string]string) []int {
	days := make([]int, 0, len(m))
	for key := range m {
		if day, err := strconv.Atoi(key); err == nil {
			days = append(days, day)
		}
	}
	sort.Ints(days)
	return days
}

// OutputPath returns the configured output filename, or the generated
// calendar_<year>_<month>.png name when it is empty.
func (c *Config) OutputPath() string {
	if c.OutputFilename != "" {
		return c.OutputFilename
	}
	return fmt.Sprintf("calendar_%d_%02d.png", c.Year, c.Month)
}
