// Package delivery defines the contract shared by all transport entrypoints.
package delivery

import "context"

// Delivery is implemented by every server or background worker that the
// application runs. Serve blocks until the delivery stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
