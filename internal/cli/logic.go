package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/duls-dev/duls/internal/events"
	"github.com/duls-dev/duls/internal/fsops"
	"github.com/duls-dev/duls/internal/logging"
	"github.com/duls-dev/duls/internal/scan"
)

func run(root string, f flags) error {
	if f.debug {
		logging.SetDebug(true)
	}

	opts := scan.Options{
		LongFormat:    f.long,
		HumanReadable: f.human,
		All:           f.all,
		Parallel:      f.parallel,
		SortBySize:    f.sortSize,
		NameFilter:    f.name,
		FullPath:      f.fullPath,
		WithTimes:     f.times,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Short format never touches metadata; just print the sorted names.
	if !opts.LongFormat {
		names, err := (&scan.Lister{Opts: opts}).Names(root)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	bus := events.New()
	sink := bus.Sink()

	showProgress := !f.json && !f.debug && isatty.IsTerminal(os.Stderr.Fd())
	progressDone := make(chan struct{})
	if showProgress {
		listener := bus.Listen()

		// Hide the cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		go func() {
			defer close(progressDone)
			for ev := range listener {
				p, ok := ev.(events.Progress)
				if !ok {
					continue
				}
				msg := fmt.Sprintf("%s %s", p.Status, filepath.Base(p.Entry))
				fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
			}
		}()
	} else {
		close(progressDone)
	}

	bus.Send(events.StartedEvent(root))
	outcome := <-scan.Start(ctx, root, opts, sink)
	if outcome.Err != nil {
		bus.Send(events.FailedEvent(outcome.Err))
	} else {
		bus.Send(events.CompletedEvent(outcome.Result.Elapsed))
	}
	bus.Close()
	<-progressDone

	if showProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if outcome.Err != nil {
		return outcome.Err
	}

	if f.json {
		return PrintJSON(outcome.Result, os.Stdout)
	}
	return PrintTable(outcome.Result, opts, os.Stdout)
}

func runDelete(path string, force bool) error {
	if err := fsops.Delete(path, force); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", path)
	return nil
}
