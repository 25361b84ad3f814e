//go:build darwin

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// statTimes extracts birth and access times from the platform stat.
func statTimes(info os.FileInfo) (created, accessed time.Time) {
	sys, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime(), info.ModTime()
	}
	created = time.Unix(sys.Birthtimespec.Sec, sys.Birthtimespec.Nsec)
	accessed = time.Unix(sys.Atimespec.Sec, sys.Atimespec.Nsec)
	return created, accessed
}
