package timeutil

import (
	"fmt"
	"time"
)

// Relative renders how long ago t was, the way the inbox gist shows mail
// age: "Just now", "3h ago", "2d ago".
func Relative(t, now time.Time) string {
	if t.IsZero() || t.After(now) {
		return "Just now"
	}
	hours := int(now.Sub(t).Hours())
	switch {
	case hours < 1:
		return "Just now"
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	default:
		return fmt.Sprintf("%dd ago", hours/24)
	}
}

// ClockRange renders a "15:04 - 16:04" style span. A zero end collapses to
// the start time alone.
func ClockRange(start, end time.Time) string {
	if start.IsZero() {
		return "Time TBD"
	}
	s := start.Local().Format("15:04")
	if end.IsZero() {
		return s
	}
	return fmt.Sprintf("%s - %s", s, end.Local().Format("15:04"))
}
