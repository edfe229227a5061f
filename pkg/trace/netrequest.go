package trace

import (
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/runtime"
)

// NetworkRequestEvent is a trace-engine-produced synthetic event
// summarizing one network request's full lifecycle. Ts and Dur are
// microseconds.
type NetworkRequestEvent struct {
	Pid  ProcessID          `json:"pid"`
	Tid  ThreadID           `json:"tid"`
	Ts   int64              `json:"ts"`
	Dur  int64              `json:"dur,omitempty"`
	Data NetworkRequestData `json:"data"`
}

// NetworkRequestData is the per-request payload of a synthetic
// network-request event. ConnectionID and ConnectionReused are pointers
// because their absence distinguishes a trace captured before the
// browser recorded connection information.
type NetworkRequestData struct {
	RequestID         string                   `json:"requestId"`
	Frame             string                   `json:"frame,omitempty"`
	URL               string                   `json:"url"`
	DocumentURL       string                   `json:"documentURL,omitempty"`
	Protocol          string                   `json:"protocol,omitempty"`
	MimeType          string                   `json:"mimeType,omitempty"`
	Priority          network.ResourcePriority `json:"priority,omitempty"`
	ResourceType      network.ResourceType     `json:"resourceType,omitempty"`
	StatusCode        int64                    `json:"statusCode,omitempty"`
	ConnectionID      *int64                   `json:"connectionId,omitempty"`
	ConnectionReused  *bool                    `json:"connectionReused,omitempty"`
	EncodedDataLength int64                    `json:"encodedDataLength,omitempty"`
	DecodedBodyLength int64                    `json:"decodedBodyLength,omitempty"`
	Failed            bool                     `json:"failed,omitempty"`
	Finished          bool                     `json:"finished,omitempty"`
	IsLinkPreload     bool                     `json:"isLinkPreload,omitempty"`
	Timing            *network.ResourceTiming  `json:"timing,omitempty"`
	Initiator         *Initiator               `json:"initiator,omitempty"`
	StackTrace        []*runtime.CallFrame     `json:"stackTrace,omitempty"`
	Redirects         []Redirect               `json:"redirects,omitempty"`
	SyntheticData     SyntheticData            `json:"syntheticData"`
}

// Initiator is the raw initiator annotation on a network-request event.
// FetchType distinguishes XHR and fetch() loads, whose reported resource
// type is unreliable.
type Initiator struct {
	Type      network.InitiatorType `json:"type"`
	FetchType string                `json:"fetchType,omitempty"`
	URL       string                `json:"url,omitempty"`
	Stack     *runtime.StackTrace   `json:"stack,omitempty"`
}

// Redirect is one hop of a request's consolidated redirect list.
// Ts and Dur are microseconds.
type Redirect struct {
	URL string `json:"url"`
	Ts  int64  `json:"ts"`
	Dur int64  `json:"dur"`
}

// SyntheticData holds lifecycle timestamps the trace engine derives for
// a request. Timestamps are microseconds on the trace clock.
type SyntheticData struct {
	DownloadStart  int64 `json:"downloadStart"`
	FinishTime     int64 `json:"finishTime"`
	SendStartTime  int64 `json:"sendStartTime,omitempty"`
	IsDiskCached   bool  `json:"isDiskCached,omitempty"`
	IsMemoryCached bool  `json:"isMemoryCached,omitempty"`
}
