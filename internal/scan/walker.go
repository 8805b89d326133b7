package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/duls-dev/duls/internal/logging"
)

// FilterWalker searches a subtree for directories whose base name contains
// a substring. A match is aggregated and reported as a single entry;
// recursion stops at the match, so its descendants are never listed
// individually. Non-matching directories are descended into but produce no
// entry themselves. Files are never inspected.
//
// Matching is case-sensitive substring containment.
type FilterWalker struct {
	// Filter is the substring to look for.
	Filter string
	// Agg computes the size of each matched directory.
	Agg *Aggregator
	// Opts controls how matched entries are rendered.
	Opts Options
	// Sink receives search progress notifications.
	Sink Sink
}

// Find returns one entry per matching directory anywhere under dir.
// Subtree errors are logged and skipped; Find itself never fails.
func (w *FilterWalker) Find(ctx context.Context, dir string) []Entry {
	var out []Entry
	w.walk(ctx, dir, &out)
	return out
}

func (w *FilterWalker) walk(ctx context.Context, dir string, out *[]Entry) {
	if ctx.Err() != nil {
		return
	}
	sink := sinkOrNop(w.Sink)
	sink.Notify(dir, dir, StatusSearching)

	entries, err := os.ReadDir(dir)
	if err != nil {
		logging.Warnf("cannot access %q: %v", dir, err)
		return
	}

	for _, ent := range entries {
		path := filepath.Join(dir, ent.Name())
		sink.Notify(dir, path, StatusCheckingFile)
		if !ent.IsDir() {
			continue
		}
		info, err := ent.Info()
		if err != nil {
			logging.Warnf("cannot stat %q: %v", path, err)
			continue
		}
		if !strings.Contains(ent.Name(), w.Filter) {
			w.walk(ctx, path, out)
			continue
		}

		sink.Notify(dir, path, StatusCalculatingMatch)
		size := w.Agg.Sum(ctx, path)
		*out = append(*out, newEntry(path, ent.Name(), info, size, w.Opts))
		sink.Notify(dir, path, StatusMatchCompleted)
	}
}
