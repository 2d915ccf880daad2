// Package lifecycle holds shared lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start/stop operations.
const DefaultTimeout = 10 * time.Second
