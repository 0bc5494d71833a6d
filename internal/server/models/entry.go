// Package models holds the persisted server-side types.
package models

import "time"

// Entry is one clipboard paste. Entries are inserted and deleted, never
// updated.
type Entry struct {
	ID        string
	Code      string
	Content   string
	CreatedAt time.Time
	// ExpiresAt is nil for entries that never expire.
	ExpiresAt *time.Time
}

// IsLive reports whether an entry with the given expiry is visible at now:
// it never expires or expires strictly after now.
func IsLive(expiresAt *time.Time, now time.Time) bool {
	return expiresAt == nil || expiresAt.After(now)
}

func (e *Entry) IsLive(now time.Time) bool {
	return IsLive(e.ExpiresAt, now)
}
