// Package delivery defines the contract for transport layers that expose
// the application to the outside world.
package delivery

import "context"

// Delivery is implemented by every transport (HTTP today). Serve blocks
// until the transport stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
