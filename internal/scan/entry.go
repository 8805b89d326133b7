package scan

import (
	"encoding/json"
	"io/fs"
	"path/filepath"
	"strings"
	"time"
)

// Kind classifies a listed child.
type Kind int

const (
	File Kind = iota
	Dir
)

// String returns "file" or "directory".
func (k Kind) String() string {
	if k == Dir {
		return "directory"
	}
	return "file"
}

// MarshalJSON renders the kind as its string form.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Entry is one listed child of the scanned root, or one matched directory
// when a name filter is active.
type Entry struct {
	// Kind tells files and directories apart.
	Kind Kind `json:"kind"`
	// Permissions is a fixed three-character summary: 'r' when the
	// read-only bit is set (space otherwise), then literal "wx". It is not
	// a POSIX permission string.
	Permissions string `json:"permissions"`
	// SizeRaw is the file length, or the recursive sum of all successfully
	// read descendants for a directory.
	SizeRaw uint64 `json:"size_raw"`
	// SizeDisplay is SizeRaw formatted per Options.HumanReadable.
	SizeDisplay string `json:"size_display"`
	// Path is the canonicalized absolute path, falling back to the joined
	// path when canonicalization fails.
	Path string `json:"path"`
	// Name is the base name.
	Name string `json:"name"`
	// Created is the platform creation time, nil when unavailable.
	Created *time.Time `json:"created_time,omitempty"`
}

// permFlags derives the permission summary from the read-only bit only.
func permFlags(mode fs.FileMode) string {
	if mode.Perm()&0o200 == 0 {
		return "rwx"
	}
	return " wx"
}

// canonicalPath resolves path to a canonical absolute form, stripping the
// Windows verbatim prefix. On failure it returns the best form it reached.
func canonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs
	}
	return strings.TrimPrefix(resolved, `\\?\`)
}

// newEntry assembles an Entry for path from its metadata and computed size.
func newEntry(path, name string, info fs.FileInfo, size uint64, opts Options) Entry {
	kind := File
	if info.IsDir() {
		kind = Dir
	}
	e := Entry{
		Kind:        kind,
		Permissions: permFlags(info.Mode()),
		SizeRaw:     size,
		SizeDisplay: FormatSize(size, opts.HumanReadable),
		Path:        canonicalPath(path),
		Name:        name,
	}
	if opts.WithTimes {
		if t, ok := birthTime(path, info); ok {
			e.Created = &t
		}
	}
	return e
}
