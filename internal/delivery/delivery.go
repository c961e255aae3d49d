// Package delivery defines the contract shared by every inbound transport.
package delivery

import "context"

// Delivery is a long-running inbound transport such as an HTTP server or a message consumer.
type Delivery interface {
	// Serve blocks until the transport stops. It must return nil on graceful shutdown.
	Serve(ctx context.Context) error
}
