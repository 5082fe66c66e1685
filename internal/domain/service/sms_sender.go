// Package service defines interfaces for outbound infrastructure the
// use cases depend on.
package service

import "context"

// SMSSender delivers short text messages to customer phone numbers.
type SMSSender interface {
	// SendSMS sends the message body to the given E.164 phone number.
	SendSMS(ctx context.Context, phoneNumber string, message string) error
}
