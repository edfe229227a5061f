package trace

import "encoding/json"

// ProcessID identifies a browser process in a trace.
type ProcessID int64

// ThreadID identifies a thread within a browser process.
type ThreadID int64

// Event is a single raw trace event. Timestamps and durations are in
// microseconds on the trace's monotonic clock.
type Event struct {
	Name string    `json:"name"`
	Cat  string    `json:"cat,omitempty"`
	Ph   string    `json:"ph,omitempty"`
	Pid  ProcessID `json:"pid"`
	Tid  ThreadID  `json:"tid"`
	Ts   int64     `json:"ts"`
	Dur  int64     `json:"dur,omitempty"`
	Args Args      `json:"args,omitempty"`
}

// Args carries an event's structured payload. Name is set on metadata
// events (thread_name, process_name); Data is event-specific and left
// undecoded here.
type Args struct {
	Name string          `json:"name,omitempty"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Trace is the flat, time-ordered event sequence of one recording.
type Trace struct {
	Events []*Event `json:"traceEvents"`
}
