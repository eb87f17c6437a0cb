package models

import "time"

// Day truncates t to midnight UTC of its calendar day.
// All calendar dates are stored in this form so they compare as plain dates.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysAgo returns the calendar day n days before today
func DaysAgo(today time.Time, n int) time.Time {
	return Day(today).AddDate(0, 0, -n)
}
