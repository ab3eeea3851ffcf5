package util //nolint:revive // package name util hosts shared formatting helpers for CLI output

import "time"

// FormatDuration renders a duration for display. Zero and negative values
// show as a dash; sub-millisecond values keep full precision, everything
// else is truncated to milliseconds.
func FormatDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "—"
	case d < time.Millisecond:
		return d.String()
	default:
		return d.Truncate(time.Millisecond).String()
	}
}
