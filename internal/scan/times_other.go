//go:build !linux && !darwin && !windows

package scan

import (
	"io/fs"
	"time"
)

// birthTime is unavailable on this platform; entries carry no creation time.
func birthTime(_ string, _ fs.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}
