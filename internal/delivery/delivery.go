// Package delivery defines the contract shared by all transport
// adapters (HTTP API, background workers) so main can start them
// uniformly.
package delivery

import "context"

// Delivery is a long-running transport adapter. Serve blocks until the
// adapter stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
