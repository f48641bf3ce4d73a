// Package lifecycle holds shared constants for application startup and
// shutdown handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of managed
// resources.
const DefaultTimeout = 10 * time.Second
