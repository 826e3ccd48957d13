// Package delivery defines the contract between the application core and
// whatever transport serves it.
package delivery

import "context"

// Delivery is a running transport endpoint, currently only HTTP.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
