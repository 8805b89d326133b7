package scan

import "fmt"

// Status is a short progress tag. The vocabulary is open: consumers should
// treat unknown values as informational.
type Status string

const (
	StatusProcessing       Status = "processing"
	StatusCalculatingDir   Status = "calculating_directory_size"
	StatusDirCompleted     Status = "directory_calculation_completed"
	StatusSearching        Status = "searching_in_directory"
	StatusCheckingFile     Status = "checking_file"
	StatusCalculatingMatch Status = "calculating_matching_directory"
	StatusMatchCompleted   Status = "matching_directory_completed"
	StatusProcessingFile   Status = "processing_file"
	StatusCompleted        Status = "completed"
)

// ProgressStatus returns the coarse percentage milestone tag, e.g.
// "progress_40%".
func ProgressStatus(pct int) Status {
	return Status(fmt.Sprintf("progress_%d%%", pct))
}

// Event is one progress notification. Events are transient; the engine
// never retains them after delivery.
type Event struct {
	// Dir is the directory being worked on.
	Dir string `json:"current_path"`
	// Entry is the child currently being processed.
	Entry string `json:"current_file"`
	// Status tags the processing stage.
	Status Status `json:"status"`
}

// Sink receives progress notifications from a running scan. Delivery is
// fire-and-forget: a Sink must not block, and a failing Sink must not
// affect the scan. Notifications from parallel branches may interleave in
// any order.
type Sink interface {
	Notify(dir, entry string, status Status)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(dir, entry string, status Status)

func (f SinkFunc) Notify(dir, entry string, status Status) {
	f(dir, entry, status)
}

// NopSink discards all notifications.
type NopSink struct{}

func (NopSink) Notify(string, string, Status) {}

// ChannelSink forwards events to a channel without ever blocking the
// traversal: events are dropped when the channel is full, and a send on a
// channel the receiver closed is swallowed.
type ChannelSink struct {
	C chan<- Event
}

func (s ChannelSink) Notify(dir, entry string, status Status) {
	defer func() {
		_ = recover()
	}()
	select {
	case s.C <- Event{Dir: dir, Entry: entry, Status: status}:
	default:
	}
}

// sinkOrNop substitutes a no-op for a nil sink so callers can leave the
// field unset.
func sinkOrNop(s Sink) Sink {
	if s == nil {
		return NopSink{}
	}
	return s
}
