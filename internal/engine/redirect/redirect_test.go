package redirect

import (
	"testing"

	"github.com/chromedp/cdproto/network"

	"github.com/crimson-sun/tracelens/pkg/netrecord"
	"github.com/crimson-sun/tracelens/pkg/trace"
)

// tailRequest is the terminal record of a chain, as the builder emits
// it before expansion.
func tailRequest() *netrecord.Request {
	return &netrecord.Request{
		RequestID:              "X",
		URL:                    "https://example.com/c.js",
		ParsedURL:              netrecord.ParsedURL{Scheme: "https", Host: "example.com", SecurityOrigin: "https://example.com"},
		RendererStartTime:      150,
		NetworkRequestTime:     150,
		ResponseHeadersEndTime: 180,
		NetworkEndTime:         200,
		TransferSize:           1234,
		StatusCode:             200,
		ResourceType:           network.ResourceTypeScript,
		Finished:               true,
	}
}

func TestExpandNoRedirects(t *testing.T) {
	tail := tailRequest()
	if hops := Expand(tail, nil); hops != nil {
		t.Fatalf("expected no hops, got %d", len(hops))
	}
	if tail.RequestID != "X" || tail.RedirectSource != nil {
		t.Error("tail must be untouched when there are no redirects")
	}
}

func TestExpandSingleHop(t *testing.T) {
	tail := tailRequest()
	hops := Expand(tail, []trace.Redirect{
		{URL: "https://example.com/b.js", Ts: 100_000, Dur: 50_000},
	})
	if len(hops) != 1 {
		t.Fatalf("expected 1 synthesized hop, got %d", len(hops))
	}
	hop := hops[0]

	if hop.RequestID != "X" {
		t.Errorf("head id = %q, want base id X", hop.RequestID)
	}
	if tail.RequestID != "X:redirect" {
		t.Errorf("tail id = %q, want X:redirect", tail.RequestID)
	}
	if hop.RedirectSource != nil {
		t.Error("chain head must have no redirect source")
	}
	if hop.RedirectDestination != tail {
		t.Error("head's destination must be the tail")
	}
	if tail.RedirectSource != hop {
		t.Error("tail's source must be the head")
	}
	if tail.RedirectDestination != nil {
		t.Error("chain tail must have no redirect destination")
	}
	if len(hop.Redirects) != 0 {
		t.Errorf("head redirects = %d entries, want 0", len(hop.Redirects))
	}
	if len(tail.Redirects) != 1 || tail.Redirects[0] != hop {
		t.Error("tail redirects must be [head]")
	}

	if hop.URL != "https://example.com/b.js" {
		t.Errorf("hop URL = %q", hop.URL)
	}
	if hop.RendererStartTime != 100 || hop.NetworkRequestTime != 100 {
		t.Errorf("hop start = (%v, %v), want (100, 100)", hop.RendererStartTime, hop.NetworkRequestTime)
	}
	if hop.ResponseHeadersEndTime != 150 || hop.NetworkEndTime != 150 {
		t.Errorf("hop end = (%v, %v), want (150, 150)", hop.ResponseHeadersEndTime, hop.NetworkEndTime)
	}
	if hop.StatusCode != 302 {
		t.Errorf("hop status = %d, want 302", hop.StatusCode)
	}
	if tail.StatusCode != 200 {
		t.Errorf("tail status = %d, must stay 200", tail.StatusCode)
	}
	if hop.ResourceType != "" {
		t.Errorf("hop resource type = %q, want unknown", hop.ResourceType)
	}
	if hop.TransferSize != 400 {
		t.Errorf("hop transfer size = %d, want nominal 400", hop.TransferSize)
	}
}

func TestExpandHopTimingReset(t *testing.T) {
	tail := tailRequest()
	tail.Timing = &network.ResourceTiming{RequestTime: 0.1, DNSStart: 3, DNSEnd: 7, SendStart: 9}
	hops := Expand(tail, []trace.Redirect{
		{URL: "https://example.com/b.js", Ts: 100_000, Dur: 50_000},
	})
	timing := hops[0].Timing
	if timing == nil {
		t.Fatal("hop must carry a timing block")
	}
	if timing.RequestTime != 0.1 {
		t.Errorf("RequestTime = %v, want 0.1 (hop start in seconds)", timing.RequestTime)
	}
	if timing.ReceiveHeadersStart != 50 || timing.ReceiveHeadersEnd != 50 {
		t.Errorf("ReceiveHeaders = (%v, %v), want (50, 50)", timing.ReceiveHeadersStart, timing.ReceiveHeadersEnd)
	}
	for name, v := range map[string]float64{
		"DNSStart":     timing.DNSStart,
		"DNSEnd":       timing.DNSEnd,
		"ConnectStart": timing.ConnectStart,
		"ConnectEnd":   timing.ConnectEnd,
		"SslStart":     timing.SslStart,
		"SslEnd":       timing.SslEnd,
		"SendStart":    timing.SendStart,
		"SendEnd":      timing.SendEnd,
		"WorkerStart":  timing.WorkerStart,
		"PushStart":    timing.PushStart,
	} {
		if v != -1 {
			t.Errorf("%s = %v, want -1", name, v)
		}
	}
	// Tail's own timing stays intact.
	if tail.Timing.DNSStart != 3 {
		t.Error("expansion mutated the tail's timing block")
	}
}

func TestExpandTwoHops(t *testing.T) {
	tail := tailRequest()
	hops := Expand(tail, []trace.Redirect{
		{URL: "https://example.com/a.js", Ts: 50_000, Dur: 20_000},
		{URL: "https://example.com/b.js", Ts: 70_000, Dur: 30_000},
	})
	if len(hops) != 2 {
		t.Fatalf("expected 2 hops, got %d", len(hops))
	}

	wantIDs := []string{"X", "X:redirect", "X:redirect:redirect"}
	chain := []*netrecord.Request{hops[0], hops[1], tail}
	for i, r := range chain {
		if r.RequestID != wantIDs[i] {
			t.Errorf("chain[%d] id = %q, want %q", i, r.RequestID, wantIDs[i])
		}
		if len(r.Redirects) != i {
			t.Errorf("chain[%d] has %d redirects, want %d", i, len(r.Redirects), i)
		}
	}

	// Simple path: head → mid → tail.
	if hops[0].RedirectSource != nil || tail.RedirectDestination != nil {
		t.Error("chain end links must be nil")
	}
	if hops[0].RedirectDestination != hops[1] || hops[1].RedirectDestination != tail {
		t.Error("forward links broken")
	}
	if tail.RedirectSource != hops[1] || hops[1].RedirectSource != hops[0] {
		t.Error("backward links broken")
	}

	// Hops are independently owned: mutating one must not leak.
	hops[0].StatusCode = 999
	if hops[1].StatusCode != 302 || tail.StatusCode != 200 {
		t.Error("hop records share state")
	}
}
