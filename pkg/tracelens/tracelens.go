package tracelens

import (
	"github.com/crimson-sun/tracelens/internal/engine"
	"github.com/crimson-sun/tracelens/internal/engine/metrics"
	"github.com/crimson-sun/tracelens/pkg/netrecord"
	"github.com/crimson-sun/tracelens/pkg/trace"
)

// Result is the normalized view of one capture: the sorted request
// list, the main-thread event subsequence, and the navigation boundary
// descriptor. Requests and their links are not mutated after Normalize
// returns.
type Result struct {
	Requests         []*netrecord.Request
	MainThreadEvents []*trace.Event
	URL              netrecord.NavigationURLs
}

// NavigationMetrics holds the primary navigation's paint timestamps in
// microseconds on the trace clock. LargestContentfulPaint is nil when
// the metric never fired.
type NavigationMetrics struct {
	FirstContentfulPaint   int64
	LargestContentfulPaint *int64
}

// Normalize runs the full pipeline over a capture. The error cases are
// structural: trace.ErrIncompatibleTrace when the capture predates
// required per-request fields. Unresolvable initiators and unparseable
// request URLs are normal outcomes, not errors.
func Normalize(capture *trace.Capture, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	eng := engine.New(engine.Config{StartTime: o.startTime, EndTime: o.endTime})
	requests, err := eng.Requests(capture)
	if err != nil {
		return nil, err
	}

	url := engine.NavigationURLs(requests)
	if o.navigationURLs != nil {
		url = *o.navigationURLs
	}

	return &Result{
		Requests:         requests,
		MainThreadEvents: eng.MainThreadEvents(capture),
		URL:              url,
	}, nil
}

// Metrics extracts first- and largest-contentful-paint timestamps for
// the capture's primary navigation. Extraction is all-or-nothing:
// absent score tables or a missing FCP fail with trace.ErrMissingMetrics.
func Metrics(capture *trace.Capture) (NavigationMetrics, error) {
	m, err := metrics.Extract(&capture.EngineResult)
	if err != nil {
		return NavigationMetrics{}, err
	}
	return NavigationMetrics{
		FirstContentfulPaint:   m.FirstContentfulPaint,
		LargestContentfulPaint: m.LargestContentfulPaint,
	}, nil
}
