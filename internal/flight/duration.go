package flight

import (
	"regexp"
	"strconv"
)

var (
	hoursPattern   = regexp.MustCompile(`(?i)(\d+)\s*h`)
	minutesPattern = regexp.MustCompile(`(?i)(\d+)\s*m`)
)

// ParseDuration converts a free-text travel time like "2h 30m" into total
// minutes. The hours and minutes components may appear in either order and
// surrounding text is tolerated. A component that is absent or unreadable
// counts as zero, so the function is total: any input yields a non-negative
// integer and "garbage" yields 0.
func ParseDuration(raw string) int {
	hours := matchComponent(hoursPattern, raw)
	minutes := matchComponent(minutesPattern, raw)
	return hours*60 + minutes
}

func matchComponent(pattern *regexp.Regexp, raw string) int {
	m := pattern.FindStringSubmatch(raw)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
