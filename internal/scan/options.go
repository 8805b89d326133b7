package scan

// Options configures a single scan. The value is read-only once a scan has
// started; nothing in the traversal mutates it.
type Options struct {
	// LongFormat gathers per-entry metadata and sizes. When false the scan
	// degenerates to a plain sorted name listing and produces no entries.
	LongFormat bool
	// HumanReadable renders sizes on the IEC ladder instead of raw bytes.
	HumanReadable bool
	// All includes dot-prefixed children in the listing.
	All bool
	// Parallel sums directory sizes with a parallel subtree walk.
	Parallel bool
	// SortBySize orders the result by descending raw size.
	SortBySize bool
	// NameFilter, when non-empty, restricts the scan to directories whose
	// base name contains the substring, searched recursively.
	NameFilter string
	// FullPath displays the canonicalized path instead of the base name.
	FullPath bool
	// WithTimes fills Entry.Created from the platform creation time.
	WithTimes bool
}
