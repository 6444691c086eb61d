package puzzle

import (
	"strconv"
	"time"
)

// SeedForDate derives the YYYYMMDD seed of the UTC calendar day containing t
func SeedForDate(t time.Time) int32 {
	y, m, d := t.UTC().Date()
	return int32(y*10000 + int(m)*100 + d)
}

// SeedString formats a seed the way it is stored in a config
func SeedString(seed int32) string {
	return strconv.FormatInt(int64(seed), 10)
}

// StartOfDayUTC truncates t to midnight of its UTC calendar day
func StartOfDayUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateISO renders UTC midnight of t's day with millisecond precision and a Z suffix
func DateISO(t time.Time) string {
	return StartOfDayUTC(t).Format("2006-01-02T15:04:05.000Z")
}
