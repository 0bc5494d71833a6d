package services

import "time"

// ExpiryClass is one of the fixed lifetimes a caller may request.
type ExpiryClass string

const (
	ExpiryHour  ExpiryClass = "1h"
	ExpiryDay   ExpiryClass = "1d"
	ExpiryWeek  ExpiryClass = "7d"
	ExpiryNever ExpiryClass = "never"

	DefaultExpiry = ExpiryDay
)

// ParseExpiryClass maps s to an ExpiryClass. Anything unrecognized,
// including the empty string, becomes DefaultExpiry.
func ParseExpiryClass(s string) ExpiryClass {
	switch c := ExpiryClass(s); c {
	case ExpiryHour, ExpiryDay, ExpiryWeek, ExpiryNever:
		return c
	}
	return DefaultExpiry
}

// Duration returns the lifetime of c. ok is false for ExpiryNever.
func (c ExpiryClass) Duration() (d time.Duration, ok bool) {
	switch c {
	case ExpiryHour:
		return time.Hour, true
	case ExpiryDay:
		return 24 * time.Hour, true
	case ExpiryWeek:
		return 7 * 24 * time.Hour, true
	case ExpiryNever:
		return 0, false
	}
	return ExpiryDay.Duration()
}

// ExpiresAt returns the absolute expiry for an entry created at now, or nil
// when it never expires.
func (c ExpiryClass) ExpiresAt(now time.Time) *time.Time {
	d, ok := c.Duration()
	if !ok {
		return nil
	}
	t := now.Add(d)
	return &t
}
