//go:build linux

package scan

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

// birthTime queries statx for the file birth time. Not every filesystem
// reports one; ok is false when the kernel leaves the field unset.
func birthTime(path string, _ fs.FileInfo) (time.Time, bool) {
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BTIME, &stx); err != nil {
		return time.Time{}, false
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, false
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), true
}
