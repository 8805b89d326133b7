//go:build !windows

package fsops

import (
	"errors"
	"syscall"
)

// classifyPlatform maps unix errnos onto the package categories. Returns
// nil when no category applies.
func classifyPlatform(err error) error {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return nil
	}
	switch errno {
	case syscall.EACCES, syscall.EPERM:
		return ErrPermission
	case syscall.EBUSY, syscall.ETXTBSY:
		return ErrBusy
	case syscall.ENOENT:
		return ErrNotFound
	case syscall.ENOTEMPTY, syscall.EEXIST:
		return ErrNotEmpty
	}
	return nil
}
