//go:build windows

package scan

import (
	"io/fs"
	"syscall"
	"time"
)

// birthTime reads the creation time from the Win32 attribute data.
func birthTime(_ string, info fs.FileInfo) (time.Time, bool) {
	attr, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(0, attr.CreationTime.Nanoseconds()), true
}
