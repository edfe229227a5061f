package netrecord

import (
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/runtime"
)

// ParsedURL is the decomposed form of a request URL.
type ParsedURL struct {
	Scheme         string `json:"scheme"`
	Host           string `json:"host"`
	SecurityOrigin string `json:"securityOrigin"`
}

// Initiator is the structured reason a request was issued: a type tag
// plus, for script-triggered loads, the captured call stack (0-based
// line and column numbers).
type Initiator struct {
	Type  network.InitiatorType `json:"type"`
	URL   string                `json:"url,omitempty"`
	Stack *runtime.StackTrace   `json:"stack,omitempty"`
}

// Request is one normalized network request. All times are milliseconds
// on the trace's monotonic clock; Timing sub-phase fields use -1 for
// "not applicable / not captured".
//
// The link fields (InitiatorRequest, RedirectSource, RedirectDestination,
// Redirects) are cross-references into the owning request list, not
// ownership. They are wired during normalization and never mutated after
// the list is returned.
type Request struct {
	RequestID string `json:"requestId"`

	URL         string    `json:"url"`
	Protocol    string    `json:"protocol,omitempty"`
	ParsedURL   ParsedURL `json:"parsedURL"`
	DocumentURL string    `json:"documentURL,omitempty"`

	RendererStartTime      float64                 `json:"rendererStartTime"`
	NetworkRequestTime     float64                 `json:"networkRequestTime"`
	ResponseHeadersEndTime float64                 `json:"responseHeadersEndTime"`
	NetworkEndTime         float64                 `json:"networkEndTime"`
	Timing                 *network.ResourceTiming `json:"timing,omitempty"`

	ConnectionID     int64 `json:"connectionId"`
	ConnectionReused bool  `json:"connectionReused"`
	TransferSize     int64 `json:"transferSize"`
	ResourceSize     int64 `json:"resourceSize"`
	FromDiskCache    bool  `json:"fromDiskCache,omitempty"`
	FromMemoryCache  bool  `json:"fromMemoryCache,omitempty"`
	IsLinkPreload    bool  `json:"isLinkPreload,omitempty"`
	Finished         bool  `json:"finished"`
	Failed           bool  `json:"failed,omitempty"`
	StatusCode       int64 `json:"statusCode"`

	// ResourceType is empty on synthesized redirect hops, whose true
	// type the trace does not retain.
	ResourceType network.ResourceType     `json:"resourceType,omitempty"`
	MimeType     string                   `json:"mimeType,omitempty"`
	Priority     network.ResourcePriority `json:"priority,omitempty"`
	FrameID      string                   `json:"frameId,omitempty"`
	FromWorker   bool                     `json:"fromWorker,omitempty"`

	Initiator Initiator `json:"initiator"`

	InitiatorRequest    *Request   `json:"-"`
	RedirectSource      *Request   `json:"-"`
	RedirectDestination *Request   `json:"-"`
	Redirects           []*Request `json:"-"`
}

// Completed reports whether the request finished without failing.
// Only completed requests qualify as initiator candidates.
func (r *Request) Completed() bool {
	return r.Finished && !r.Failed
}

// FromCache reports whether the response was served from disk or memory
// cache.
func (r *Request) FromCache() bool {
	return r.FromDiskCache || r.FromMemoryCache
}

// Clone returns a deep copy of the request's value state. Timing and the
// initiator stack are copied so later mutation of the clone cannot reach
// the original; link fields are reset, since a clone starts with no place
// in any chain.
func (r *Request) Clone() *Request {
	c := *r
	if r.Timing != nil {
		t := *r.Timing
		c.Timing = &t
	}
	c.Initiator.Stack = cloneStack(r.Initiator.Stack)
	c.InitiatorRequest = nil
	c.RedirectSource = nil
	c.RedirectDestination = nil
	c.Redirects = nil
	return &c
}

func cloneStack(s *runtime.StackTrace) *runtime.StackTrace {
	if s == nil {
		return nil
	}
	c := *s
	c.CallFrames = make([]*runtime.CallFrame, len(s.CallFrames))
	for i, f := range s.CallFrames {
		fc := *f
		c.CallFrames[i] = &fc
	}
	c.Parent = cloneStack(s.Parent)
	return &c
}
