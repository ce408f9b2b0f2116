// Package lifecycle holds shared bounds for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every fx start/stop hook and background write that outlives a request.
const DefaultTimeout = 10 * time.Second
