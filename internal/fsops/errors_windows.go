//go:build windows

package fsops

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

// classifyPlatform maps Win32 error codes onto the package categories.
// Returns nil when no category applies.
func classifyPlatform(err error) error {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return nil
	}
	switch errno {
	case windows.ERROR_ACCESS_DENIED:
		return ErrPermission
	case windows.ERROR_SHARING_VIOLATION:
		return ErrBusy
	case windows.ERROR_FILE_NOT_FOUND, windows.ERROR_PATH_NOT_FOUND:
		return ErrNotFound
	case windows.ERROR_DIR_NOT_EMPTY:
		return ErrNotEmpty
	}
	return nil
}
