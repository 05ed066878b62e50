// Package format renders durations and play counts for display.
package format

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Duration formats a duration as M:SS, or H:MM:SS from one hour up.
func Duration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// PlayCount formats a play count compactly: 1532 -> "1.5K",
// 2_400_000 -> "2.4M", 1_100_000_000 -> "1.1B".
func PlayCount(n int64) string {
	if n < 0 {
		n = 0
	}
	switch {
	case n >= 1_000_000_000:
		return trimZero(float64(n)/1_000_000_000) + "B"
	case n >= 1_000_000:
		return trimZero(float64(n)/1_000_000) + "M"
	case n >= 1_000:
		return trimZero(float64(n)/1_000) + "K"
	default:
		return fmt.Sprintf("%d", n)
	}
}

// PlayCountFull formats a play count with thousands separators.
func PlayCountFull(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Comma(n)
}

func trimZero(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}
