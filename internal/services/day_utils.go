package services

import "time"

// DateOnly truncates a timestamp to its calendar date, keeping the location.
func DateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, value.Location())
}

// ISOWeekday returns the weekday as 1=Monday..7=Sunday.
func ISOWeekday(date time.Time) int {
	weekday := int(date.Weekday())
	if weekday == 0 {
		return 7
	}
	return weekday
}

func dateKey(value time.Time) string {
	return value.Format("2006-01-02")
}

func sameDay(a time.Time, b time.Time) bool {
	return dateKey(DateOnly(a)) == dateKey(DateOnly(b))
}

func sameMinute(a time.Time, b time.Time) bool {
	return a.Year() == b.Year() &&
		a.Month() == b.Month() &&
		a.Day() == b.Day() &&
		a.Hour() == b.Hour() &&
		a.Minute() == b.Minute()
}

func betweenInclusive(value time.Time, from time.Time, to time.Time) bool {
	return !value.Before(from) && !value.After(to)
}
