package demo

import (
	"fmt"
	"strconv"
	"strings"
)

// HoursRow is one display row of the opening-hours table.
type HoursRow struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

// HoursData is the fixed 7-row (Mon-Sun) hours table. IsSample marks the
// hardcoded fallback week so callers can show a disclaimer.
type HoursData struct {
	Rows     []HoursRow `json:"rows"`
	IsSample bool       `json:"isSample"`
}

var dayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var dayAliases = map[string]string{
	"monday": "Mon", "mon": "Mon",
	"tuesday": "Tue", "tue": "Tue",
	"wednesday": "Wed", "wed": "Wed",
	"thursday": "Thu", "thu": "Thu",
	"friday": "Fri", "fri": "Fri",
	"saturday": "Sat", "sat": "Sat",
	"sunday": "Sun", "sun": "Sun",
}

var fallbackHours = []HoursRow{
	{Day: "Mon", Hours: "11:00 AM - 9:30 PM"},
	{Day: "Tue", Hours: "11:00 AM - 9:30 PM"},
	{Day: "Wed", Hours: "11:00 AM - 9:30 PM"},
	{Day: "Thu", Hours: "11:00 AM - 9:30 PM"},
	{Day: "Fri", Hours: "11:00 AM - 10:00 PM"},
	{Day: "Sat", Hours: "12:00 PM - 10:00 PM"},
	{Day: "Sun", Hours: "12:00 PM - 9:00 PM"},
}

// FallbackHours returns a copy of the sample week.
func FallbackHours() HoursData {
	rows := make([]HoursRow, len(fallbackHours))
	copy(rows, fallbackHours)
	return HoursData{Rows: rows, IsSample: true}
}

func normalizeDayLabel(key string) string {
	if label, ok := dayAliases[strings.ToLower(strings.TrimSpace(key))]; ok {
		return label
	}
	return key
}

// formatTime24 turns "HH:MM" into "H:MM AM/PM". A missing minute part
// defaults to "00".
func formatTime24(time24 string) string {
	hourStr, minute, found := strings.Cut(time24, ":")
	if !found || minute == "" {
		minute = "00"
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hourStr))
	if err != nil {
		hour = 0
	}
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	if hour == 0 {
		hour = 12
	} else if hour > 12 {
		hour -= 12
	}
	return fmt.Sprintf("%d:%s %s", hour, minute, meridiem)
}

func formatPeriod(entry map[string]any) string {
	openAt, _ := entry["open"].(string)
	closeAt, _ := entry["close"].(string)
	if openAt == "" || closeAt == "" {
		return ""
	}
	return formatTime24(openAt) + " - " + formatTime24(closeAt)
}

// BuildHours normalizes a loosely-typed hours record (as decoded from the
// restaurant's hours_json) into the fixed Mon-Sun table. Day keys accept
// full or 3-letter names in any case; string values pass through
// verbatim; period lists are formatted and comma-joined. Unknown keys and
// incomplete periods are skipped. Days the input never mentions come back
// as "Closed". Absent or unusable input yields the sample week.
func BuildHours(raw map[string]any) HoursData {
	if len(raw) == 0 {
		return FallbackHours()
	}

	parsed := make(map[string]string)
	usable := 0
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			parsed[normalizeDayLabel(key)] = v
			usable++
		case []any:
			var periods []string
			for _, entry := range v {
				switch e := entry.(type) {
				case string:
					periods = append(periods, e)
				case map[string]any:
					if formatted := formatPeriod(e); formatted != "" {
						periods = append(periods, formatted)
					}
				}
			}
			if len(periods) > 0 {
				parsed[normalizeDayLabel(key)] = strings.Join(periods, ", ")
				usable++
			}
		}
	}

	if usable == 0 {
		return FallbackHours()
	}

	rows := make([]HoursRow, 0, len(dayLabels))
	for _, day := range dayLabels {
		hours := parsed[day]
		if hours == "" {
			hours = "Closed"
		}
		rows = append(rows, HoursRow{Day: day, Hours: hours})
	}
	return HoursData{Rows: rows, IsSample: false}
}
