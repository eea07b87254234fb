// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a transport serving requests until its context ends or the
// process shuts it down through its lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
