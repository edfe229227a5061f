// Package initiator resolves, for each normalized request, the single
// request that caused it. The resolver is deliberately conservative:
// when the candidate set cannot be narrowed to exactly one request, the
// link stays unset rather than guessing.
package initiator

import (
	"github.com/chromedp/cdproto/network"

	"github.com/crimson-sun/tracelens/pkg/netrecord"
)

// Resolve runs the single initiator-resolution pass over an expanded
// request list, setting InitiatorRequest where the cascade converges.
// This is the only mutation the list sees after redirect expansion.
func Resolve(requests []*netrecord.Request) {
	byURL := make(map[string][]*netrecord.Request)
	for _, r := range requests {
		byURL[r.URL] = append(byURL[r.URL], r)
	}
	for _, r := range requests {
		r.InitiatorRequest = choose(r, byURL)
	}
}

// choose picks the initiating request, or nil when no single candidate
// survives.
func choose(req *netrecord.Request, byURL map[string][]*netrecord.Request) *netrecord.Request {
	// A non-head chain member is trivially initiated by the hop that
	// redirected to it.
	if req.RedirectSource != nil {
		return req.RedirectSource
	}

	initiatorURL := initiatorURL(req)
	if initiatorURL == "" {
		return nil
	}

	// Hard constraints: an initiator must have completed, and its
	// headers must have arrived before the initiated request started.
	var candidates []*netrecord.Request
	for _, c := range byURL[initiatorURL] {
		if c.Completed() && c.ResponseHeadersEndTime <= req.RendererStartTime {
			candidates = append(candidates, c)
		}
	}

	// Cascading tie-breaks: each applies only while ambiguity remains,
	// and never empties the set.
	candidates = narrow(candidates, func(c *netrecord.Request) bool {
		// Prefetches are classified Other and cannot initiate.
		return c.ResourceType != network.ResourceTypeOther
	})
	candidates = narrow(candidates, func(c *netrecord.Request) bool {
		return c.FrameID == req.FrameID
	})
	if req.Initiator.Type == network.InitiatorTypeParser {
		candidates = narrow(candidates, func(c *netrecord.Request) bool {
			return c.ResourceType == network.ResourceTypeDocument
		})
	}
	candidates = preferPreloads(candidates)

	if len(candidates) == 1 {
		return candidates[0]
	}
	return nil
}

// initiatorURL extracts the URL of the resource that triggered req: the
// raw initiator URL when present, otherwise the topmost stack frame that
// carries one.
func initiatorURL(req *netrecord.Request) string {
	if req.Initiator.URL != "" {
		return req.Initiator.URL
	}
	if req.Initiator.Stack == nil {
		return ""
	}
	for _, f := range req.Initiator.Stack.CallFrames {
		if f.URL != "" {
			return f.URL
		}
	}
	return ""
}

// narrow filters candidates by keep, skipping the filter entirely when
// it would eliminate every candidate or when no ambiguity remains.
func narrow(candidates []*netrecord.Request, keep func(*netrecord.Request) bool) []*netrecord.Request {
	if len(candidates) <= 1 {
		return candidates
	}
	var kept []*netrecord.Request
	for _, c := range candidates {
		if keep(c) {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return candidates
	}
	return kept
}

// preferPreloads resolves the preload-vs-cache ambiguity: when every
// non-preload candidate was itself a cache hit, the real network load
// was the preload, so the preload candidates win.
func preferPreloads(candidates []*netrecord.Request) []*netrecord.Request {
	if len(candidates) <= 1 {
		return candidates
	}
	var preloads []*netrecord.Request
	for _, c := range candidates {
		if c.IsLinkPreload {
			preloads = append(preloads, c)
		}
	}
	if len(preloads) == 0 {
		return candidates
	}
	for _, c := range candidates {
		if !c.IsLinkPreload && !c.FromCache() {
			return candidates
		}
	}
	return preloads
}
