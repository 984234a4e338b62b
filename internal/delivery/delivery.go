// Package delivery defines the contract every serving surface implements.
package delivery

import "context"

// Delivery is a long-running serving component started by the entrypoint.
type Delivery interface {
	// Serve blocks until the component stops or fails.
	Serve(ctx context.Context) error
}
