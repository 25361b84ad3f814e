//go:build linux

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// statTimes extracts creation and access times from the platform stat.
// Linux has no portable birth time; status-change time stands in.
func statTimes(info os.FileInfo) (created, accessed time.Time) {
	sys, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime(), info.ModTime()
	}
	created = time.Unix(sys.Ctim.Sec, sys.Ctim.Nsec)
	accessed = time.Unix(sys.Atim.Sec, sys.Atim.Nsec)
	return created, accessed
}
