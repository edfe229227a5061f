// Package redirect explodes a request's consolidated redirect list back
// into discrete, causally-linked hop records.
package redirect

import (
	"github.com/chromedp/cdproto/network"

	"github.com/crimson-sun/tracelens/internal/urlx"
	"github.com/crimson-sun/tracelens/pkg/netrecord"
	"github.com/crimson-sun/tracelens/pkg/trace"
)

// The trace retains neither the real redirect status nor per-hop
// transfer sizes; hops carry these fixed stand-ins.
const (
	hopStatusCode   = 302
	hopTransferSize = 400
)

// Expand synthesizes one record per redirect hop of tail, wires the
// chain links and chained request ids, and returns the synthesized hops
// in chain order. The tail record is mutated in place: it becomes the
// chain's final member, with the fully suffixed id and the complete
// redirect prefix.
//
// Hop k of the chain carries k trailing ":redirect" suffixes on the
// tail's original id, so the head keeps the base id unchanged.
func Expand(tail *netrecord.Request, redirects []trace.Redirect) []*netrecord.Request {
	if len(redirects) == 0 {
		return nil
	}

	hops := make([]*netrecord.Request, len(redirects))
	for i, r := range redirects {
		hops[i] = synthesize(tail, r)
	}

	chain := append(hops, tail)
	for i := 1; i < len(chain); i++ {
		chain[i].RequestID = chain[i-1].RequestID + ":redirect"
		chain[i].RedirectSource = chain[i-1]
		chain[i-1].RedirectDestination = chain[i]
		chain[i].Redirects = append([]*netrecord.Request(nil), chain[:i]...)
	}
	return hops
}

// synthesize clones the tail record and overwrites everything a hop
// observes for itself: its own URL, its own start/end timestamps, and a
// reset timing block. The rest of the tail's fields carry over.
func synthesize(tail *netrecord.Request, r trace.Redirect) *netrecord.Request {
	hop := tail.Clone()

	startMs := float64(r.Ts) / 1000
	endMs := float64(r.Ts+r.Dur) / 1000

	hop.URL = r.URL
	if parsed, ok := urlx.Parse(r.URL); ok {
		hop.ParsedURL = parsed
	}
	hop.RendererStartTime = startMs
	hop.NetworkRequestTime = startMs
	hop.ResponseHeadersEndTime = endMs
	hop.NetworkEndTime = endMs
	hop.Timing = hopTiming(startMs, float64(r.Dur)/1000)
	hop.StatusCode = hopStatusCode
	hop.ResourceType = ""
	hop.TransferSize = hopTransferSize
	return hop
}

// hopTiming builds a timing block with every sub-phase cleared to the
// "not captured" sentinel, keeping only the request-time triple derived
// from the hop's own timestamps.
func hopTiming(startMs, durMs float64) *network.ResourceTiming {
	return &network.ResourceTiming{
		RequestTime:              startMs / 1000,
		ProxyStart:               -1,
		ProxyEnd:                 -1,
		DNSStart:                 -1,
		DNSEnd:                   -1,
		ConnectStart:             -1,
		ConnectEnd:               -1,
		SslStart:                 -1,
		SslEnd:                   -1,
		WorkerStart:              -1,
		WorkerReady:              -1,
		WorkerFetchStart:         -1,
		WorkerRespondWithSettled: -1,
		SendStart:                -1,
		SendEnd:                  -1,
		PushStart:                -1,
		PushEnd:                  -1,
		ReceiveHeadersStart:      durMs,
		ReceiveHeadersEnd:        durMs,
	}
}
