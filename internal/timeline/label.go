package timeline

import (
	"fmt"
	"time"
)

// Weekday names indexed by time.Weekday (Sunday = 0).
var weekdays = [7]string{"日", "一", "二", "三", "四", "五", "六"}

// DividerLabel returns the caption of a date divider: 今天 for the same
// calendar day as now, 昨天 for exactly one day earlier, otherwise the
// month/day plus weekday composite.
func DividerLabel(date, now time.Time) string {
	if sameDay(date, now) {
		return "今天"
	}
	if sameDay(date, now.AddDate(0, 0, -1)) {
		return "昨天"
	}
	return fmt.Sprintf("%02d月%02d日 星期%s", int(date.Month()), date.Day(), weekdays[date.Weekday()])
}

// FormatClock renders the in-bubble timestamp as HH:mm.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
