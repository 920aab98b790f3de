package ui

import (
	"fmt"
	"time"
)

// Weekday names in the fixed display locale (Korean). Indexed by
// time.Weekday (Sunday = 0).
var weekdayNames = [...]string{
	"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일",
}

// DayKey returns the store key for a calendar day.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// PrevDay and NextDay step one calendar day; time.Date normalizes month and
// year boundaries.
func PrevDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()-1, 0, 0, 0, 0, t.Location())
}

func NextDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, t.Location())
}

// FormatLong renders the long-form local calendar date with weekday,
// e.g. "2026년 8월 30일 일요일".
func FormatLong(t time.Time) string {
	return fmt.Sprintf("%d년 %d월 %d일 %s",
		t.Year(), int(t.Month()), t.Day(), weekdayNames[t.Weekday()])
}
