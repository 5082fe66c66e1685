package entity

import "time"

// Administrator represents a Telegram user allowed to manage shipments,
// templates and the admin set itself.
//
// The set starts empty after deployment; until the first administrator is
// registered the system is in a bootstrap state in which the next principal
// issuing /start is silently promoted. This is a deliberate convenience, not a
// bug, and it means the panel is unprotected between deployment and first
// registration.
type Administrator struct {
	TelegramID int64     `json:"telegram_id"` // Telegram numeric user ID, the set key.
	CreatedAt  time.Time `json:"created_at"`  // When this administrator was registered.
}
