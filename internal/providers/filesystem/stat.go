package filesystem

import (
	"fmt"
	"os"
	"time"
)

// FileStat is the metadata reported by filesystem.info.
type FileStat struct {
	Size        int64     `json:"size"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
	Accessed    time.Time `json:"accessed"`
	IsDirectory bool      `json:"isDirectory"`
	IsFile      bool      `json:"isFile"`
	Permissions string    `json:"permissions"`
}

func statPath(path string) (*FileStat, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	created, accessed := statTimes(info)

	return &FileStat{
		Size:        info.Size(),
		Created:     created,
		Modified:    info.ModTime(),
		Accessed:    accessed,
		IsDirectory: info.IsDir(),
		IsFile:      info.Mode().IsRegular(),
		Permissions: fmt.Sprintf("%03o", info.Mode().Perm()),
	}, nil
}
