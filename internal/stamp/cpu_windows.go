//go:build windows

package stamp

import (
	"time"

	"golang.org/x/sys/windows"
)

func processCPUTime() time.Duration {
	var creation, exit, kernel, user windows.Filetime
	if err := windows.GetProcessTimes(windows.CurrentProcess(), &creation, &exit, &kernel, &user); err != nil {
		return time.Since(processStart)
	}
	return filetimeDuration(kernel) + filetimeDuration(user)
}

// Filetime durations count 100ns ticks.
func filetimeDuration(ft windows.Filetime) time.Duration {
	ticks := int64(ft.HighDateTime)<<32 | int64(ft.LowDateTime)
	return time.Duration(ticks * 100)
}
