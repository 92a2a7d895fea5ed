package domain

import "time"

// Notification is a persisted, timestamped message recorded against an
// owner. Immutable once created; deletable only in bulk.
type Notification struct {
	At      time.Time
	Message string
}
