// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShipmentNotification represents a registered customer shipment awaiting a
// reminder and/or a delivery confirmation.
type ShipmentNotification struct {
	ID                 uuid.UUID  `json:"id"`                             // The Global Unique Identifier (GUID) for the notification.
	CustomerName       string     `json:"customer_name"`                  // Free-form customer name.
	PhoneNumber        string     `json:"phone_number"`                   // Customer phone in E.164-like form (normalized by the caller).
	PhoneDigits        string     `json:"-"`                              // Digits-only rendering of PhoneNumber, kept for suffix lookups.
	ImagePath          string     `json:"image_path"`                     // Relative path of the shipment photo in the image store.
	ReminderDays       int        `json:"reminder_days"`                  // Number of days after creation at which the reminder falls due.
	ReminderTime       time.Time  `json:"reminder_time"`                  // CreatedAt + ReminderDays. Computed once, never recomputed.
	ReminderSent       bool       `json:"reminder_sent"`                  // One-way false -> true once the reminder is dispatched.
	DeliveryConfirmed  bool       `json:"delivery_confirmed"`             // One-way false -> true once receipt is confirmed.
	DeliveryDate       *time.Time `json:"delivery_date,omitempty"`        // Set iff DeliveryConfirmed.
	DeliveryProofImage *string    `json:"delivery_proof_image,omitempty"` // Optional proof photo path, set on confirmation.
	CreatedAt          time.Time  `json:"created_at"`                     // Timestamp of when this record was created. Immutable.
}

// shortIDLen is the number of leading UUID characters shown to customers and
// accepted back as a lookup code.
const shortIDLen = 8

// ShortID returns the customer-facing shipment code, the first eight
// characters of the UUID.
func (n *ShipmentNotification) ShortID() string {
	return n.ID.String()[:shortIDLen]
}

// ReminderDue reports whether the reminder for this shipment is actionable at
// the given instant. A reminder overdue by any amount stays due until it is
// explicitly marked sent; there is no staleness cutoff.
func (n *ShipmentNotification) ReminderDue(now time.Time) bool {
	return !n.ReminderSent && !n.ReminderTime.After(now)
}

// ReminderTimeFor derives the reminder instant from a creation time and a day
// count. Days are exact 24-hour spans so the derivation is independent of the
// calling environment's timezone.
func ReminderTimeFor(createdAt time.Time, reminderDays int) time.Time {
	return createdAt.Add(time.Duration(reminderDays) * 24 * time.Hour)
}

// NotificationPatch carries a partial update for a ShipmentNotification. Nil
// fields are left untouched.
type NotificationPatch struct {
	CustomerName       *string
	PhoneNumber        *string
	ImagePath          *string
	ReminderSent       *bool
	DeliveryConfirmed  *bool
	DeliveryDate       *time.Time
	DeliveryProofImage *string
}
