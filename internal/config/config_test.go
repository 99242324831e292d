package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	// Point at a path that does not exist: the sample defaults apply.
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Year != 2026 || cfg.Month != 3 {
		t.Errorf("default year/month = %d/%d, want 2026/3", cfg.Year, cfg.Month)
	}
	if cfg.Schedule["1"] != "15-21" {
		t.Errorf("default schedule day 1 = %q, want 15-21", cfg.Schedule["1"])
	}
	if len(cfg.Holidays) != 1 || cfg.Holidays[0] != 20 {
		t.Errorf("default holidays = %v, want [20]", cfg.Holidays)
	}
	if cfg.BottomText == "" {
		t.Error("default bottom_text is empty")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `{
		"year": 2026,
		"month": 4,
		"schedule": {"3": "15-21"},
		"prev_month_schedule": {},
		"next_month_schedule": {},
		"holidays": [29],
		"events": [{"start": 10, "name": "Sale"}],
		"bottom_text": "テスト 123",
		"output_filename": "april.png"
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Month != 4 {
		t.Errorf("month = %d, want 4", cfg.Month)
	}
	if len(cfg.Events) != 1 {
		t.Fatalf("events = %d, want 1", len(cfg.Events))
	}
	if cfg.Events[0].End != 10 {
		t.Errorf("event end = %d, want start day 10 (default)", cfg.Events[0].End)
	}
	if cfg.OutputPath() != "april.png" {
		t.Errorf("OutputPath() = %q, want april.png", cfg.OutputPath())
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := writeConfig(t, `{"year": 2026,`)

	if _, err := Load(path); err == nil {
		t.Fatal("Load() accepted malformed JSON")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Year:     2026,
			Month:    3,
			Schedule: map[string]string{"1": "15-21"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "month zero", mutate: func(c *Config) { c.Month = 0 }, wantErr: true},
		{name: "month thirteen", mutate: func(c *Config) { c.Month = 13 }, wantErr: true},
		{name: "schedule day out of range", mutate: func(c *Config) { c.Schedule["32"] = "15-21" }, wantErr: true},
		{name: "schedule key not a number", mutate: func(c *Config) { c.Schedule["abc"] = "15-21" }, wantErr: true},
		{name: "holiday out of range", mutate: func(c *Config) { c.Holidays = []int{40} }, wantErr: true},
		{
			name: "prev month day range uses prev month length",
			mutate: func(c *Config) {
				// Feb 2026 has 28 days.
				c.PrevMonthSchedule = map[string]string{"29": "15-21"}
			},
			wantErr: true,
		},
		{name: "event start out of range", mutate: func(c *Config) { c.Events = []Event{{Start: 0, End: 2}} }, wantErr: true},
		{name: "event end before start", mutate: func(c *Config) { c.Events = []Event{{Start: 5, End: 3}} }, wantErr: true},
		{name: "event in range", mutate: func(c *Config) { c.Events = []Event{{Start: 27, End: 28, Name: "Sale"}} }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestScheduleDays(t *testing.T) {
	m := map[string]string{"1": "15-21", "20": "17-22"}
	days := ScheduleDays(m)

	if len(days) != 2 {
		t.Fatalf("ScheduleDays() = %d entries, want 2", len(days))
	}
	if days[1] != "15-21" || days[20] != "17-22" {
		t.Errorf("ScheduleDays() = %v", days)
	}

	keys := ScheduleKeys(m)
	if len(keys) != 2 || keys[0] != 1 || keys[1] != 20 {
		t.Errorf("ScheduleKeys() = %v, want [1 20]", keys)
	}
}

func TestOutputPathGenerated(t *testing.T) {
	cfg := &Config{Year: 2026, Month: 3}
	if got := cfg.OutputPath(); got != "calendar_2026_03.png" {
		t.Errorf("OutputPath() = %q, want calendar_2026_03.png", got)
	}
}
