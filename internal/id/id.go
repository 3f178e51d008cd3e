package id

import (
	"fmt"
	"strconv"
	"time"
)

// FormatAccountID returns the account ID for a creation time: the epoch
// millisecond count in decimal, e.g. "1717231800000". Existing ledgers were
// written with this scheme, so it is part of the stored format.
func FormatAccountID(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// ParseAccountID recovers the creation time from an account ID.
func ParseAccountID(id string) (time.Time, error) {
	millis, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid account ID %q: %w", id, err)
	}
	return time.UnixMilli(millis).UTC(), nil
}

// NextAccountID returns an ID for an account created at now that is not
// already taken. Two accounts created within the same millisecond would
// otherwise collide, so the timestamp is bumped until the ID is free.
func NextAccountID(now time.Time, taken map[string]bool) string {
	for {
		id := FormatAccountID(now)
		if !taken[id] {
			return id
		}
		now = now.Add(time.Millisecond)
	}
}
