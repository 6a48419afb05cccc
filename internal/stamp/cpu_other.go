//go:build !unix && !windows

package stamp

import "time"

func processCPUTime() time.Duration {
	return time.Since(processStart)
}
