// Package delivery defines the contract every serving surface fulfills so the
// entrypoint can start them uniformly.
package delivery

import "context"

// Delivery is a long-running serving surface such as the HTTP API or the
// cleanup worker. Serve blocks until the surface stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
