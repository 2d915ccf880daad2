// Package delivery defines the contract shared by every transport surface.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker) managed by
// the composition root. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
