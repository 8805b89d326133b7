package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/duls-dev/duls/internal/logging"
)

// Lister is the top-level entry point of a scan: it reads one directory's
// immediate children and assembles the annotated entry list.
type Lister struct {
	Opts Options
	Sink Sink
}

// Names returns the sorted base names of root's immediate children,
// applying the hidden-file filter. This is the whole short-format listing.
// It fails only when root itself cannot be enumerated.
func (l *Lister) Names(root string) ([]string, error) {
	dirents, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("cannot access %q: %w", root, err)
	}

	names := make([]string, 0, len(dirents))
	for _, d := range dirents {
		if !l.Opts.All && strings.HasPrefix(d.Name(), ".") {
			continue
		}
		names = append(names, d.Name())
	}
	sort.Strings(names)
	return names, nil
}

// List reads root's children and returns one entry per child, in
// lexicographic name order unless Options.SortBySize reorders the result
// by descending raw size. The only hard failure is an unreadable root;
// children that fail to stat are logged and skipped.
//
// When a name filter is set, only directories are considered: a child
// whose name contains the filter is listed directly, any other directory
// is searched recursively for matches, and files are skipped.
func (l *Lister) List(ctx context.Context, root string) ([]Entry, error) {
	names, err := l.Names(root)
	if err != nil {
		return nil, err
	}
	if !l.Opts.LongFormat {
		return nil, nil
	}

	sink := sinkOrNop(l.Sink)
	agg := &Aggregator{Parallel: l.Opts.Parallel, Sink: sink}

	entries := make([]Entry, 0, len(names))
	total := len(names)
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return entries, err
		}

		sink.Notify(root, name, StatusProcessing)
		if total > 0 && i%max(1, total/10) == 0 {
			sink.Notify(root, name, ProgressStatus(i*100/total))
		}

		path := filepath.Join(root, name)
		info, err := os.Lstat(path)
		if err != nil {
			logging.Warnf("cannot access %q: %v", path, err)
			continue
		}

		if l.Opts.NameFilter != "" {
			if !info.IsDir() {
				continue
			}
			if !strings.Contains(name, l.Opts.NameFilter) {
				w := &FilterWalker{
					Filter: l.Opts.NameFilter,
					Agg:    agg,
					Opts:   l.Opts,
					Sink:   sink,
				}
				entries = append(entries, w.Find(ctx, path)...)
				continue
			}
		}

		var size uint64
		if info.IsDir() {
			sink.Notify(root, path, StatusCalculatingDir)
			size = agg.Sum(ctx, path)
			sink.Notify(root, path, StatusDirCompleted)
		} else {
			size = uint64(info.Size())
		}

		entries = append(entries, newEntry(path, name, info, size, l.Opts))
		sink.Notify(root, path, StatusCompleted)
	}

	if l.Opts.SortBySize {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].SizeRaw > entries[j].SizeRaw
		})
	}
	return entries, nil
}
