// Package scan implements the directory listing and size aggregation engine.
//
// A scan reads one directory's immediate children and annotates each with a
// recursively aggregated size, a display string, coarse permission flags and
// an optional creation time. Unreadable files and subtrees degrade to a
// partial result instead of failing the scan; only an unreadable root is
// reported as an error. Directory sizes can be summed sequentially or with
// a parallel walk over the subtree.
package scan
