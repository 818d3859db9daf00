package format

// Package format contains pure presentation helpers shared by handlers
// and chart rendering. No I/O, no locale handling beyond what humanize does.

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Bytes renders a byte count in IEC units ("3.0 KiB", "1.2 MiB").
func Bytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}

// Date renders t as YYYY-MM-DD in UTC. The zero time renders as "never".
func Date(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.UTC().Format("2006-01-02")
}

// Relative renders t relative to now ("3 days ago"). The zero time
// renders as "never".
func Relative(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
