// Package lifecycle holds shared constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup/shutdown steps (DB ping, server drain).
const DefaultTimeout = 10 * time.Second
