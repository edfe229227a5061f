// Package workers locates dedicated and service worker execution
// contexts in a raw trace.
package workers

import "github.com/crimson-sun/tracelens/pkg/trace"

// Thread names that mark worker execution contexts.
const (
	serviceWorkerThreadName   = "ServiceWorker thread"
	dedicatedWorkerThreadName = "DedicatedWorker thread"
)

// Threads maps each process to the set of its worker thread ids.
type Threads map[trace.ProcessID]map[trace.ThreadID]struct{}

// Find scans thread_name metadata events and accumulates worker threads
// per process. A trace with no workers yields an empty map; that is not
// an error.
func Find(tr *trace.Trace) Threads {
	found := Threads{}
	for _, ev := range tr.Events {
		if ev.Name != "thread_name" {
			continue
		}
		name := ev.Args.Name
		if name != serviceWorkerThreadName && name != dedicatedWorkerThreadName {
			continue
		}
		tids := found[ev.Pid]
		if tids == nil {
			tids = map[trace.ThreadID]struct{}{}
			found[ev.Pid] = tids
		}
		tids[ev.Tid] = struct{}{}
	}
	return found
}

// Contains reports whether (pid, tid) is a known worker thread.
func (t Threads) Contains(pid trace.ProcessID, tid trace.ThreadID) bool {
	tids, ok := t[pid]
	if !ok {
		return false
	}
	_, ok = tids[tid]
	return ok
}
