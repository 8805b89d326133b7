package scan

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"

	"github.com/duls-dev/duls/internal/logging"
)

// Aggregator sums the bytes under a directory. It never fails: entries
// that cannot be enumerated or stat'ed contribute zero to the total, so a
// bad entry never poisons a sibling's or ancestor's sum.
//
// Symlinks are not followed in either mode; a link counts as its own
// length. This also rules out traversal cycles through links.
type Aggregator struct {
	// Parallel selects the fan-out walk. The choice is made once by the
	// caller and holds for the whole subtree.
	Parallel bool
	// Sink receives a processing_file notification per visited child.
	Sink Sink
}

// Sum returns the total size in bytes of everything under dir.
func (a *Aggregator) Sum(ctx context.Context, dir string) uint64 {
	if a.Parallel {
		return a.sumParallel(ctx, dir)
	}
	return a.sumSequential(ctx, dir)
}

func (a *Aggregator) sumSequential(ctx context.Context, dir string) uint64 {
	if ctx.Err() != nil {
		return 0
	}
	sink := sinkOrNop(a.Sink)

	entries, err := os.ReadDir(dir)
	if err != nil {
		logging.Debugf("cannot read directory %q: %v", dir, err)
		return 0
	}

	var total uint64
	for _, ent := range entries {
		path := filepath.Join(dir, ent.Name())
		sink.Notify(dir, path, StatusProcessingFile)

		info, err := ent.Info()
		if err != nil {
			logging.Debugf("cannot stat %q: %v", path, err)
			continue
		}
		if info.IsDir() {
			total += a.sumSequential(ctx, path)
		} else {
			total += uint64(info.Size())
		}
	}
	return total
}

// sumParallel fans the subtree out over fastwalk's worker pool and reduces
// into an atomic counter. Addition is order-independent, so sibling
// completion order does not matter.
func (a *Aggregator) sumParallel(ctx context.Context, dir string) uint64 {
	sink := sinkOrNop(a.Sink)
	var total atomic.Uint64

	conf := &fastwalk.Config{Follow: false}
	err := fastwalk.Walk(conf, dir, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err != nil {
			logging.Debugf("cannot read %q: %v", path, err)
			return nil
		}
		if path == dir {
			return nil
		}

		sink.Notify(filepath.Dir(path), path, StatusProcessingFile)
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			logging.Debugf("cannot stat %q: %v", path, err)
			return nil
		}
		total.Add(uint64(info.Size()))
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Debugf("walking %q: %v", dir, err)
	}
	return total.Load()
}
