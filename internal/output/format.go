package output

import "github.com/crimson-sun/tracelens/pkg/netrecord"

// Record is the serialized form of a normalized request: the value
// fields as-is, with the weak cross-references flattened to request ids
// so each line stands alone in an NDJSON stream.
type Record struct {
	*netrecord.Request

	InitiatorRequestID    string   `json:"initiatorRequestId,omitempty"`
	RedirectSourceID      string   `json:"redirectSourceId,omitempty"`
	RedirectDestinationID string   `json:"redirectDestinationId,omitempty"`
	RedirectIDs           []string `json:"redirects,omitempty"`
}

// FormatRequest flattens a request's links into ids.
func FormatRequest(r *netrecord.Request) Record {
	rec := Record{Request: r}
	if r.InitiatorRequest != nil {
		rec.InitiatorRequestID = r.InitiatorRequest.RequestID
	}
	if r.RedirectSource != nil {
		rec.RedirectSourceID = r.RedirectSource.RequestID
	}
	if r.RedirectDestination != nil {
		rec.RedirectDestinationID = r.RedirectDestination.RequestID
	}
	for _, hop := range r.Redirects {
		rec.RedirectIDs = append(rec.RedirectIDs, hop.RequestID)
	}
	return rec
}
