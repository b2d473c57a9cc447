//go:build !windows && !unix

package debug

import "errors"

func readPeakRSS() (uint64, error) { return 0, errors.New("rss not supported on this platform") }
