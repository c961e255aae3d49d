// Package lifecycle defines timeouts shared by fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start/stop hook (pings, server shutdown, publisher flush).
const DefaultTimeout = 10 * time.Second
