// Package mainthread isolates the trace events that ran on the
// renderer's main thread, the subset the downstream simulation replays.
package mainthread

import "github.com/crimson-sun/tracelens/pkg/trace"

// Thread name markers. CrBrowserMain is the fallback for single-process
// launches, where the browser thread doubles as the renderer main thread.
const (
	rendererMainThreadName = "CrRendererMain"
	browserMainThreadName  = "CrBrowserMain"
)

// Collect filters tr to the events on each participating process's main
// thread. Processes come from the main-frame navigations when any were
// committed, otherwise from the top-level renderer set. Pure filter; the
// returned slice shares event pointers with the input.
func Collect(tr *trace.Trace, res *trace.EngineResult) []*trace.Event {
	mainTidByPid := resolveThreads(&res.Meta)

	var events []*trace.Event
	for _, ev := range tr.Events {
		if tid, ok := mainTidByPid[ev.Pid]; ok && tid == ev.Tid {
			events = append(events, ev)
		}
	}
	return events
}

// resolveThreads picks, per participating process, the thread carrying
// the renderer-main marker, falling back to the browser-main marker.
func resolveThreads(meta *trace.Meta) map[trace.ProcessID]trace.ThreadID {
	var pids []trace.ProcessID
	if len(meta.MainFrameNavigations) > 0 {
		seen := map[trace.ProcessID]bool{}
		for _, nav := range meta.MainFrameNavigations {
			if !seen[nav.Pid] {
				seen[nav.Pid] = true
				pids = append(pids, nav.Pid)
			}
		}
	} else {
		pids = meta.TopLevelRendererIDs
	}

	mainTidByPid := make(map[trace.ProcessID]trace.ThreadID, len(pids))
	for _, pid := range pids {
		if tid, ok := findThread(meta.ThreadsInProcess[pid], rendererMainThreadName); ok {
			mainTidByPid[pid] = tid
		} else if tid, ok := findThread(meta.ThreadsInProcess[pid], browserMainThreadName); ok {
			mainTidByPid[pid] = tid
		}
	}
	return mainTidByPid
}

func findThread(threads map[trace.ThreadID]trace.ThreadInfo, name string) (trace.ThreadID, bool) {
	// Deterministic pick if a malformed trace names several threads
	// identically: lowest thread id wins.
	var best trace.ThreadID
	found := false
	for tid, info := range threads {
		if info.Name != name {
			continue
		}
		if !found || tid < best {
			best = tid
			found = true
		}
	}
	return best, found
}
