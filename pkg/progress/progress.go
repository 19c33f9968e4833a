// Package progress implements the checkpoint-driven, best-effort progress
// side channel for conversions. Observers are plain callbacks invoked
// synchronously on the converting goroutine; a Reporter isolates the
// pipeline from anything an observer does, including panics, so the side
// channel can never change a conversion's outcome.
package progress

// State tags a checkpoint with the pipeline stage it belongs to.
type State string

const (
	StateStarting   State = "starting"
	StateLoaded     State = "loaded"
	StateMeshing    State = "meshing"
	StateMeshed     State = "meshed"
	StateProcessing State = "processing"
	StateExporting  State = "exporting"
	StateFinished   State = "finished"
	StateError      State = "error"
)

// NoPercent marks an event that carries no percent value.
const NoPercent = -1

// Event is one progress checkpoint. Events are created at well-defined
// pipeline checkpoints, handed to the observer, and discarded.
type Event struct {
	Percent int // 0..100, or NoPercent
	State   State
	Message string
}

// Func observes progress events. It must not block indefinitely; the
// pipeline imposes no timeout on it.
type Func func(Event)

// Reporter delivers events to an observer. A nil Reporter or a nil
// observer drops all events at no cost.
type Reporter struct {
	fn Func
}

// NewReporter wraps an observer callback. fn may be nil.
func NewReporter(fn Func) *Reporter {
	return &Reporter{fn: fn}
}

// Report emits one checkpoint. Observer panics are swallowed; the side
// channel is diagnostic only and never part of the success decision.
func (r *Reporter) Report(percent int, state State, message string) {
	if r == nil || r.fn == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	r.fn(Event{Percent: percent, State: state, Message: message})
}

// Error emits the terminal error checkpoint. No further checkpoints may
// follow it within one conversion.
func (r *Reporter) Error(message string) {
	r.Report(0, StateError, message)
}
