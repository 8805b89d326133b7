package scan

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

// FormatSize renders a byte count for display. With human set it scales on
// the IEC ladder ("0 B", "1.5 KiB", ...); otherwise it returns the plain
// decimal string.
func FormatSize(n uint64, human bool) string {
	if !human {
		return strconv.FormatUint(n, 10)
	}
	return humanize.IBytes(n)
}
