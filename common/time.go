package common

import (
	"time"
)

const timeFormat = "2006-01-02 15:04:05"

// UtcTimeFormat returns t in UTC formatted for log line prefixes.
func UtcTimeFormat(t time.Time) string {
	return t.UTC().Format(timeFormat) + " UTC"
}
