// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a transport that serves the application until its context is
// cancelled or the fx lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
