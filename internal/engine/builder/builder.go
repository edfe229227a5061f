// Package builder maps one synthetic network-request trace event into a
// normalized request record.
package builder

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/runtime"

	"github.com/crimson-sun/tracelens/internal/engine/workers"
	"github.com/crimson-sun/tracelens/internal/urlx"
	"github.com/crimson-sun/tracelens/pkg/netrecord"
	"github.com/crimson-sun/tracelens/pkg/trace"
)

const base64Marker = "base64,"

// Build normalizes a single network-request event. Returns (nil, nil)
// when the request URL does not parse: such entries are expected in a
// small fraction of traces and are dropped, not failed. Returns
// trace.ErrIncompatibleTrace when connection fields are absent, which
// means the whole capture predates a required capability.
func Build(ev *trace.NetworkRequestEvent, workerThreads workers.Threads, res *trace.EngineResult) (*netrecord.Request, error) {
	data := &ev.Data
	if data.ConnectionID == nil || data.ConnectionReused == nil {
		return nil, fmt.Errorf("builder: request %s has no connection info: %w", data.RequestID, trace.ErrIncompatibleTrace)
	}

	parsed, ok := urlx.Parse(data.URL)
	if !ok {
		return nil, nil
	}

	timing := copyTiming(data.Timing)
	networkRequestTime := float64(data.SyntheticData.DownloadStart) / 1000
	if timing != nil {
		networkRequestTime = timing.RequestTime * 1000
	}

	return &netrecord.Request{
		RequestID:   data.RequestID,
		URL:         data.URL,
		Protocol:    data.Protocol,
		ParsedURL:   parsed,
		DocumentURL: data.DocumentURL,

		RendererStartTime:      float64(ev.Ts) / 1000,
		NetworkRequestTime:     networkRequestTime,
		ResponseHeadersEndTime: float64(data.SyntheticData.DownloadStart) / 1000,
		NetworkEndTime:         float64(data.SyntheticData.FinishTime) / 1000,
		Timing:                 timing,

		ConnectionID:     *data.ConnectionID,
		ConnectionReused: *data.ConnectionReused,
		TransferSize:     data.EncodedDataLength,
		ResourceSize:     resourceSize(data, parsed),
		FromDiskCache:    data.SyntheticData.IsDiskCached,
		FromMemoryCache:  data.SyntheticData.IsMemoryCached,
		IsLinkPreload:    data.IsLinkPreload,
		Finished:         data.Finished,
		Failed:           data.Failed,
		StatusCode:       data.StatusCode,

		ResourceType: resourceType(data),
		MimeType:     data.MimeType,
		Priority:     data.Priority,
		FrameID:      data.Frame,
		FromWorker:   fromWorker(ev, workerThreads, res),

		Initiator: initiator(data),
	}, nil
}

// copyTiming clones the detailed timing block, zeroing out the worker
// fetch sub-phases the trace does not report reliably.
func copyTiming(t *network.ResourceTiming) *network.ResourceTiming {
	if t == nil {
		return nil
	}
	c := *t
	c.WorkerFetchStart = -1
	c.WorkerRespondWithSettled = -1
	return &c
}

// resourceType returns the event's reported type, overridden for XHR and
// fetch() loads whose trace typing is unreliable.
func resourceType(data *trace.NetworkRequestData) network.ResourceType {
	if data.Initiator != nil {
		switch data.Initiator.FetchType {
		case "xmlhttprequest":
			return network.ResourceTypeXHR
		case "fetch":
			return network.ResourceTypeFetch
		}
	}
	return data.ResourceType
}

// resourceSize recovers the decoded body length for inline data: URLs,
// which the trace reports as zero: the base64 payload after the marker
// is decoded and its byte length used instead.
func resourceSize(data *trace.NetworkRequestData, parsed netrecord.ParsedURL) int64 {
	size := data.DecodedBodyLength
	if parsed.Scheme != "data" || size != 0 {
		return size
	}
	i := strings.Index(data.URL, base64Marker)
	if i < 0 {
		return size
	}
	payload := data.URL[i+len(base64Marker):]
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		if decoded, err = base64.RawStdEncoding.DecodeString(payload); err != nil {
			return size
		}
	}
	return int64(len(decoded))
}

// initiator captures the structured initiation reason. The default is
// "other"; a call stack comes from the event-level frames, falling back
// to the initiator's own stack, with line and column numbers converted
// from 1-based to 0-based.
func initiator(data *trace.NetworkRequestData) netrecord.Initiator {
	init := netrecord.Initiator{Type: network.InitiatorTypeOther}
	if data.Initiator != nil {
		if data.Initiator.Type != "" {
			init.Type = data.Initiator.Type
		}
		init.URL = data.Initiator.URL
	}
	raw := data.StackTrace
	if len(raw) == 0 && data.Initiator != nil && data.Initiator.Stack != nil {
		raw = data.Initiator.Stack.CallFrames
	}
	if len(raw) > 0 {
		frames := make([]*runtime.CallFrame, len(raw))
		for i, f := range raw {
			fc := *f
			fc.LineNumber--
			fc.ColumnNumber--
			frames[i] = &fc
		}
		init.Stack = &runtime.StackTrace{CallFrames: frames}
	}
	return init
}

// fromWorker merges two independent worker signals: thread_name metadata
// scanned from the raw trace, and the trace engine's own worker table.
// Either one marks the request as worker-issued.
func fromWorker(ev *trace.NetworkRequestEvent, workerThreads workers.Threads, res *trace.EngineResult) bool {
	if workerThreads.Contains(ev.Pid, ev.Tid) {
		return true
	}
	_, ok := res.Workers.WorkerIDByThread[ev.Tid]
	return ok
}
