package events

import (
	"testing"

	"github.com/duls-dev/duls/internal/scan"
)

func TestBusFanOut(t *testing.T) {
	bus := New()
	listener1 := bus.Listen()
	listener2 := bus.Listen()

	bus.Send(StartedEvent("/tmp"))
	bus.Send(ProgressEvent("/tmp", "/tmp/a", scan.StatusProcessing))
	bus.Send(CompletedEvent(0.5))
	bus.Close()

	for i, listener := range []<-chan Event{listener1, listener2} {
		var got []Event
		for ev := range listener {
			got = append(got, ev)
		}
		if len(got) != 3 {
			t.Fatalf("listener %d received %d events, want 3", i, len(got))
		}
		if _, ok := got[0].(Started); !ok {
			t.Errorf("listener %d: first event is %T, want Started", i, got[0])
		}
		p, ok := got[1].(Progress)
		if !ok {
			t.Fatalf("listener %d: second event is %T, want Progress", i, got[1])
		}
		if p.Entry != "/tmp/a" || p.Status != scan.StatusProcessing {
			t.Errorf("listener %d: unexpected progress event %+v", i, p)
		}
		if _, ok := got[2].(Completed); !ok {
			t.Errorf("listener %d: third event is %T, want Completed", i, got[2])
		}
	}
}

func TestBusDropsWhenListenerSaturated(t *testing.T) {
	bus := New()
	_ = bus.Listen()

	// Nobody drains the listener; sends beyond its buffer must not block.
	for i := 0; i < listenerBuffer*2; i++ {
		bus.Send(ProgressEvent("d", "e", scan.StatusProcessingFile))
	}
	bus.Close()
}

func TestBusSendAfterClose(t *testing.T) {
	bus := New()
	bus.Listen()
	bus.Close()
	bus.Send(StartedEvent("/")) // no panic, no delivery
	bus.Close()                 // double close is a no-op
}

func TestBusSinkPublishesProgress(t *testing.T) {
	bus := New()
	listener := bus.Listen()

	bus.Sink().Notify("/root", "/root/child", scan.StatusCheckingFile)
	bus.Close()

	ev, ok := <-listener
	if !ok {
		t.Fatal("no event received")
	}
	p, ok := ev.(Progress)
	if !ok {
		t.Fatalf("got %T, want Progress", ev)
	}
	if p.Dir != "/root" || p.Entry != "/root/child" || p.Status != scan.StatusCheckingFile {
		t.Errorf("unexpected event %+v", p)
	}
}
