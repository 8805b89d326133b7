package scan

import (
	"context"
	"sync"
	"testing"
)

// recordingSink captures every notification; safe for concurrent use.
type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) Notify(dir, entry string, status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, Event{Dir: dir, Entry: entry, Status: status})
}

func (s *recordingSink) statuses() map[Status]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[Status]int{}
	for _, e := range s.events {
		seen[e.Status]++
	}
	return seen
}

func TestListEmitsLifecycleNotifications(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "file.bin", 2)
	writeFile(t, tmp, "dir/inner.bin", 3)

	sink := &recordingSink{}
	l := &Lister{Opts: Options{LongFormat: true}, Sink: sink}
	if _, err := l.List(context.Background(), tmp); err != nil {
		t.Fatalf("List: %v", err)
	}

	seen := sink.statuses()
	for _, want := range []Status{
		StatusProcessing,
		StatusCalculatingDir,
		StatusProcessingFile,
		StatusDirCompleted,
		StatusCompleted,
		ProgressStatus(0),
	} {
		if seen[want] == 0 {
			t.Errorf("no %q notification emitted; saw %v", want, seen)
		}
	}
}

func TestFilterWalkEmitsSearchNotifications(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "sub/needle-x/data.bin", 1)

	sink := &recordingSink{}
	l := &Lister{Opts: Options{LongFormat: true, NameFilter: "needle"}, Sink: sink}
	if _, err := l.List(context.Background(), tmp); err != nil {
		t.Fatalf("List: %v", err)
	}

	seen := sink.statuses()
	for _, want := range []Status{
		StatusSearching,
		StatusCheckingFile,
		StatusCalculatingMatch,
		StatusMatchCompleted,
	} {
		if seen[want] == 0 {
			t.Errorf("no %q notification emitted; saw %v", want, seen)
		}
	}
}

func TestChannelSinkNeverBlocks(t *testing.T) {
	// Unbuffered channel with nobody receiving: Notify must return.
	ch := make(chan Event)
	sink := ChannelSink{C: ch}
	sink.Notify("d", "e", StatusProcessing)

	// Closed channel: the send must be swallowed, not panic.
	closed := make(chan Event, 1)
	close(closed)
	ChannelSink{C: closed}.Notify("d", "e", StatusProcessing)
}

func TestChannelSinkDelivers(t *testing.T) {
	ch := make(chan Event, 1)
	ChannelSink{C: ch}.Notify("dir", "entry", StatusCompleted)

	select {
	case ev := <-ch:
		if ev.Dir != "dir" || ev.Entry != "entry" || ev.Status != StatusCompleted {
			t.Errorf("unexpected event %+v", ev)
		}
	default:
		t.Fatal("no event delivered")
	}
}

func TestNilSinkIsSafe(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "f.bin", 1)

	l := &Lister{Opts: Options{LongFormat: true}}
	if _, err := l.List(context.Background(), tmp); err != nil {
		t.Fatalf("List with nil sink: %v", err)
	}
}
