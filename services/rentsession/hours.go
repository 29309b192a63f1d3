package rentsession

import (
	"math"
	"time"
)

var dateTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

func parseDateTime(date, timeOfDay string) (time.Time, bool) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, date+"T"+timeOfDay); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ComputeTotalHours derives the rental duration in hours between
// dateFrom+installTime and dateTo+uninstallTime, floored at zero. The
// second return is false when any input is missing or unparseable, in which
// case the caller keeps its supplied value.
func ComputeTotalHours(dateFrom, dateTo, installTime, uninstallTime string) (float64, bool) {
	if dateFrom == "" || dateTo == "" || installTime == "" || uninstallTime == "" {
		return 0, false
	}
	start, ok := parseDateTime(dateFrom, installTime)
	if !ok {
		return 0, false
	}
	end, ok := parseDateTime(dateTo, uninstallTime)
	if !ok {
		return 0, false
	}
	hours := end.Sub(start).Hours()
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0, false
	}
	return math.Max(0, hours), true
}
