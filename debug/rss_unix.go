//go:build unix

package debug

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// readPeakRSS returns the peak resident set size (ru_maxrss).
func readPeakRSS() (uint64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, err
	}
	maxrss := uint64(ru.Maxrss)
	if runtime.GOOS == "darwin" || runtime.GOOS == "ios" {
		return maxrss, nil // already bytes
	}
	return maxrss * 1024, nil
}
