// Package fsops offers the guarded delete operation that sits next to the
// scan engine: the engine itself never mutates the filesystem.
package fsops

import (
	"errors"
	"fmt"
	"os"
)

// Category errors for delete failures; match with errors.Is.
var (
	// ErrReadOnly is returned for a read-only target when force is not set.
	ErrReadOnly = errors.New("target is read-only")
	// ErrPermission covers access-denied failures.
	ErrPermission = errors.New("permission denied")
	// ErrBusy covers targets held open by another process.
	ErrBusy = errors.New("resource busy")
	// ErrNotFound covers missing targets.
	ErrNotFound = errors.New("not found")
	// ErrNotEmpty covers non-recursive removal of a populated directory.
	ErrNotEmpty = errors.New("directory not empty")
)

// Delete removes the file or directory at path. Directories are removed
// recursively. A read-only target is rejected unless force is set, in
// which case the read-only bit is cleared first. Failures are wrapped in
// one of the package category errors.
func Delete(path string, force bool) error {
	info, err := os.Lstat(path)
	if err != nil {
		return classify(fmt.Errorf("accessing %q: %w", path, err))
	}

	if info.Mode().Perm()&0o200 == 0 {
		if !force {
			return fmt.Errorf("%q: %w (set force to delete anyway)", path, ErrReadOnly)
		}
		if err := os.Chmod(path, info.Mode().Perm()|0o200); err != nil {
			return classify(fmt.Errorf("clearing read-only bit on %q: %w", path, err))
		}
	}

	if info.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		return classify(fmt.Errorf("deleting %q: %w", path, err))
	}
	return nil
}

// classify attaches the matching category error, keeping the original
// error in the chain.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case os.IsPermission(err):
		return fmt.Errorf("%w: %v", ErrPermission, err)
	}
	if cat := classifyPlatform(err); cat != nil {
		return fmt.Errorf("%w: %v", cat, err)
	}
	return err
}
