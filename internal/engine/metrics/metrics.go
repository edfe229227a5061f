// Package metrics extracts the paint timestamps of the primary
// navigation from the trace engine's metric score tables.
package metrics

import (
	"fmt"

	"github.com/crimson-sun/tracelens/pkg/trace"
)

// Metrics holds the primary navigation's paint timestamps, in
// microseconds on the trace clock. LargestContentfulPaint is nil when
// the metric never fired.
type Metrics struct {
	FirstContentfulPaint   int64
	LargestContentfulPaint *int64
}

// Extract resolves the last main-frame navigation's score table and
// reads FCP (required) and LCP (optional) from it. Extraction is
// all-or-nothing: every failure wraps trace.ErrMissingMetrics.
func Extract(res *trace.EngineResult) (Metrics, error) {
	scoresByNav := res.PageLoadMetrics.ScoresByFrame[res.Meta.MainFrameID]
	if scoresByNav == nil {
		return Metrics{}, fmt.Errorf("metrics: %w for main frame", trace.ErrMissingMetrics)
	}

	navs := res.Meta.MainFrameNavigations
	var scores trace.MetricScores
	if len(navs) > 0 {
		scores = scoresByNav[navs[len(navs)-1].ID]
	}
	if scores == nil {
		return Metrics{}, fmt.Errorf("metrics: %w for specified navigation", trace.ErrMissingMetrics)
	}

	fcp, ok := scores[trace.MetricFCP]
	if !ok || fcp.Event == nil {
		return Metrics{}, fmt.Errorf("metrics: %w: no First Contentful Paint", trace.ErrMissingMetrics)
	}

	m := Metrics{FirstContentfulPaint: fcp.Event.Ts}
	if lcp, ok := scores[trace.MetricLCP]; ok && lcp.Event != nil {
		ts := lcp.Event.Ts
		m.LargestContentfulPaint = &ts
	}
	return m, nil
}
