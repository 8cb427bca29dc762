package model

import (
	"fmt"
	"strconv"
	"time"
)

// FormatCount renders a count the way the dashboard cards show it: 2.0M, 50.0K, 100.
func FormatCount(count string) string {
	return FormatInt(ParseCount(count))
}

func FormatInt(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	}
	return strconv.FormatInt(n, 10)
}

// FormatPublishedAt renders an RFC 3339 timestamp as "Jan 2, 2006".
// Unparseable input is returned unchanged.
func FormatPublishedAt(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("Jan 2, 2006")
}
