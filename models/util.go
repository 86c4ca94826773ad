package models

import "time"

const (
	StatusHealthy     = "healthy"
	StatusOperational = "operational"
	UptimeRunning     = "running"
)

const (
	// TimestampLayout is ISO-8601 with microseconds, fixed width so that
	// timestamps in the same zone sort lexically.
	TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

	// DisplayLayout is the human readable form used on the landing page.
	DisplayLayout = "2006-01-02 15:04:05 UTC"
)

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// FormatDisplayTime renders t in UTC using DisplayLayout.
func FormatDisplayTime(t time.Time) string {
	return t.UTC().Format(DisplayLayout)
}

// NewStatus returns the status payload with every check healthy.
func NewStatus(now time.Time) *Status {
	return &Status{
		Status: StatusOperational,
		Uptime: UptimeRunning,
		Checks: StatusChecks{
			Database:         StatusHealthy,
			Cache:            StatusHealthy,
			ExternalServices: StatusHealthy,
		},
		Timestamp: FormatTimestamp(now),
	}
}
