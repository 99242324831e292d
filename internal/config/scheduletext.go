package config

import "strings"

// ParseScheduleText parses compact schedule entries of the form
// "1 15-21, 2 17-21" or one "DAY HOURS" pair per line into a schedule map.
// Entries without both fields are skipped.
func ParseScheduleText(text string) map[string]string {
	schedule := make(map[string]string)

	entries := strings.Split(strings.ReplaceAll(text, ",", "\n"), "\n")
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		fields := strings.Fields(entry)
		if len(fields) >= 2 {
			schedule[fields[0]] = fields[1]
		}
	}

	return schedule
}
