// Package delivery defines the contract every transport front end
// fulfils so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running server collected into the fx "deliveries"
// group and started by main.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
