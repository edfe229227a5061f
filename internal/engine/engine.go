// Package engine orchestrates the normalization passes: build one
// record per network-request event, explode redirect chains, resolve
// initiators, and sort. One capture in, one request list out; the
// transform is synchronous, deterministic, and holds no state between
// invocations.
package engine

import (
	"math"
	"sort"

	"github.com/crimson-sun/tracelens/internal/engine/builder"
	"github.com/crimson-sun/tracelens/internal/engine/initiator"
	"github.com/crimson-sun/tracelens/internal/engine/mainthread"
	"github.com/crimson-sun/tracelens/internal/engine/metrics"
	"github.com/crimson-sun/tracelens/internal/engine/redirect"
	"github.com/crimson-sun/tracelens/internal/engine/workers"
	"github.com/crimson-sun/tracelens/pkg/netrecord"
	"github.com/crimson-sun/tracelens/pkg/trace"
)

// Config bounds the normalization window. Zero values mean the whole
// trace: StartTime defaults to 0 and EndTime to +inf. Times are
// microseconds on the trace clock; the window is [StartTime, EndTime).
type Config struct {
	StartTime int64
	EndTime   int64
}

// Engine runs the normalization pipeline over captures.
type Engine struct {
	cfg Config
}

// New creates an Engine with the given config.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Requests runs the full pipeline: build, expand redirect chains,
// resolve initiators, then a stable sort by renderer start time. The
// returned list is complete or the error is fatal; there are no partial
// results.
func (e *Engine) Requests(c *trace.Capture) ([]*netrecord.Request, error) {
	workerThreads := workers.Find(&c.Trace)
	end := float64(e.cfg.EndTime)
	if e.cfg.EndTime == 0 {
		end = math.Inf(1)
	}

	var requests []*netrecord.Request
	for _, ev := range c.EngineResult.NetworkRequests {
		if float64(ev.Ts) < float64(e.cfg.StartTime) || float64(ev.Ts) >= end {
			continue
		}
		req, err := builder.Build(ev, workerThreads, &c.EngineResult)
		if err != nil {
			return nil, err
		}
		if req == nil {
			continue
		}
		// Synthesized hops are appended, not positionally inserted;
		// the sort below restores chronological order.
		requests = append(requests, redirect.Expand(req, ev.Data.Redirects)...)
		requests = append(requests, req)
	}

	initiator.Resolve(requests)

	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].RendererStartTime < requests[j].RendererStartTime
	})
	return requests, nil
}

// MainThreadEvents returns the trace events on the participating
// processes' main threads.
func (e *Engine) MainThreadEvents(c *trace.Capture) []*trace.Event {
	return mainthread.Collect(&c.Trace, &c.EngineResult)
}

// Metrics extracts the primary navigation's paint timestamps.
func (e *Engine) Metrics(c *trace.Capture) (metrics.Metrics, error) {
	return metrics.Extract(&c.EngineResult)
}

// NavigationURLs computes the navigation-boundary descriptor from a
// sorted request list: the first request's URL is what was asked for,
// and following its redirect-destination chain to the terminus gives the
// main document URL. The displayed URL defaults to the main document
// URL, since the trace does not record client-side rewrites.
func NavigationURLs(requests []*netrecord.Request) netrecord.NavigationURLs {
	if len(requests) == 0 {
		return netrecord.NavigationURLs{}
	}
	first := requests[0]
	last := first
	for last.RedirectDestination != nil {
		last = last.RedirectDestination
	}
	return netrecord.NavigationURLs{
		RequestedURL:      first.URL,
		MainDocumentURL:   last.URL,
		FinalDisplayedURL: last.URL,
	}
}
