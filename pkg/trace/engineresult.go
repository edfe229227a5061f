package trace

// EngineResult is the structured output of the upstream trace engine for
// one recording: navigation metadata, the time-ordered synthetic
// network-request list, worker attribution tables, and per-navigation
// metric scores.
type EngineResult struct {
	Meta            Meta                   `json:"meta"`
	NetworkRequests []*NetworkRequestEvent `json:"networkRequests"`
	Workers         Workers                `json:"workers"`
	PageLoadMetrics PageLoadMetrics        `json:"pageLoadMetrics"`
}

// Meta describes the recording's process and navigation topology.
type Meta struct {
	MainFrameID          string                                `json:"mainFrameId"`
	MainFrameNavigations []*Navigation                         `json:"mainFrameNavigations,omitempty"`
	TopLevelRendererIDs  []ProcessID                           `json:"topLevelRendererIds,omitempty"`
	ThreadsInProcess     map[ProcessID]map[ThreadID]ThreadInfo `json:"threadsInProcess,omitempty"`
}

// Navigation is one committed main-frame navigation.
type Navigation struct {
	ID  string    `json:"navigationId"`
	Pid ProcessID `json:"pid"`
	Ts  int64     `json:"ts"`
}

// ThreadInfo carries per-thread metadata from the trace engine.
type ThreadInfo struct {
	Name string `json:"name"`
}

// Workers maps worker execution contexts as reported by the trace
// engine's own worker pass. This signal is independent of (and does not
// always agree with) thread_name metadata events.
type Workers struct {
	WorkerIDByThread map[ThreadID]string `json:"workerIdByThread,omitempty"`
}

// Metric names a page-load metric in a score table.
type Metric string

// Metrics with per-navigation score entries.
const (
	MetricFCP Metric = "FCP"
	MetricLCP Metric = "LCP"
)

// MetricScore is one metric's entry for a navigation. Event is the
// trace event that fired the metric; nil when the metric never fired.
type MetricScore struct {
	Event *Event `json:"event,omitempty"`
}

// MetricScores is a navigation's metric score table.
type MetricScores map[Metric]MetricScore

// PageLoadMetrics holds metric score tables keyed by frame id, then by
// navigation id.
type PageLoadMetrics struct {
	ScoresByFrame map[string]map[string]MetricScores `json:"scoresByFrame,omitempty"`
}
