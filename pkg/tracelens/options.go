package tracelens

import "github.com/crimson-sun/tracelens/pkg/netrecord"

type options struct {
	startTime      int64
	endTime        int64
	navigationURLs *netrecord.NavigationURLs
}

// Option configures a Normalize call.
type Option func(*options)

// WithNavigationURLs overrides the navigation-boundary descriptor
// instead of deriving it from the first request's redirect chain.
func WithNavigationURLs(u netrecord.NavigationURLs) Option {
	return func(o *options) {
		o.navigationURLs = &u
	}
}

// WithTimeRange restricts normalization to network events with
// start <= ts < end, in microseconds on the trace clock. An end of 0
// means unbounded. Default: the whole trace.
func WithTimeRange(start, end int64) Option {
	return func(o *options) {
		o.startTime = start
		o.endTime = end
	}
}

func defaultOptions() options {
	return options{}
}
