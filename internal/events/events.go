// Package events provides the in-process event bus that bridges scan
// progress to UI hosts. Delivery is best-effort: a saturated listener
// loses events rather than stalling the scan.
package events

import (
	"time"

	"github.com/duls-dev/duls/internal/scan"
)

// Event is anything published on the bus.
type Event interface {
	When() time.Time
}

// Started announces that a scan began.
type Started struct {
	ts   time.Time
	Root string
}

func StartedEvent(root string) Started {
	return Started{ts: time.Now(), Root: root}
}

func (e Started) When() time.Time { return e.ts }

// Progress carries one traversal notification.
type Progress struct {
	ts     time.Time
	Dir    string
	Entry  string
	Status scan.Status
}

func ProgressEvent(dir, entry string, status scan.Status) Progress {
	return Progress{ts: time.Now(), Dir: dir, Entry: entry, Status: status}
}

func (e Progress) When() time.Time { return e.ts }

// Completed announces a finished scan.
type Completed struct {
	ts      time.Time
	Elapsed float64
}

func CompletedEvent(elapsed float64) Completed {
	return Completed{ts: time.Now(), Elapsed: elapsed}
}

func (e Completed) When() time.Time { return e.ts }

// Failed announces a scan that ended in an error.
type Failed struct {
	ts  time.Time
	Err error
}

func FailedEvent(err error) Failed {
	return Failed{ts: time.Now(), Err: err}
}

func (e Failed) When() time.Time { return e.ts }
