package utils

import "time"

// StartOfDay returns local midnight of the calendar day t falls on in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// DayBounds returns [00:00:00.000, 23:59:59.999] of the local calendar day t falls on.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	start := StartOfDay(t, loc)
	end := start.AddDate(0, 0, 1).Add(-time.Millisecond)
	return start, end
}

// DayKey formats the local calendar day of t as YYYY-MM-DD.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// ISOMillis is the absolute timestamp layout used in responses and exports.
const ISOMillis = "2006-01-02T15:04:05.000Z07:00"

// FormatISO renders t in UTC with millisecond precision, e.g. 2025-11-17T13:00:00.000Z.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOMillis)
}
