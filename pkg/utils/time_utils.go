package utils

import "time"

// Clock returns the current time; services take one so tests can pin the year.
type Clock func() time.Time

func SystemClock() time.Time { return time.Now() }

// FixedClock always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
