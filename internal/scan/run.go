package scan

import (
	"context"
	"time"
)

// Result is the outcome of one scan. It is created once per call and owned
// by the caller.
type Result struct {
	// Entries is the ordered entry list.
	Entries []Entry `json:"entries"`
	// Elapsed is the wall-clock scan duration in seconds.
	Elapsed float64 `json:"elapsed_seconds"`
}

// Run scans root synchronously and returns the annotated listing. It fails
// only when root itself cannot be read or ctx is cancelled; everything
// deeper degrades to a partial result.
func Run(ctx context.Context, root string, opts Options, sink Sink) (*Result, error) {
	start := time.Now()
	l := &Lister{Opts: opts, Sink: sink}
	entries, err := l.List(ctx, root)
	if err != nil {
		return nil, err
	}
	return &Result{
		Entries: entries,
		Elapsed: time.Since(start).Seconds(),
	}, nil
}

// Outcome is the asynchronous result of Start.
type Outcome struct {
	Result *Result
	Err    error
}

// Start runs the scan on its own goroutine so the caller's event loop is
// never blocked. The single Outcome is delivered on the returned channel,
// which is closed afterwards; progress keeps flowing through sink while
// the scan runs.
func Start(ctx context.Context, root string, opts Options, sink Sink) <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		defer close(ch)
		res, err := Run(ctx, root, opts, sink)
		ch <- Outcome{Result: res, Err: err}
	}()
	return ch
}
