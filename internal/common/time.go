package common

import "time"

// TimeLayout is the timestamp format used for TEXT columns. It is RFC 3339
// with fixed-width nanoseconds so that lexicographic ordering in SQL matches
// chronological ordering. Values are always stored in UTC.
const TimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// TimeToDB formats t for storage. The zero time maps to an empty string.
func TimeToDB(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimeLayout)
}

// TimeFromDB parses a stored timestamp. An empty string maps to the zero time.
func TimeFromDB(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
