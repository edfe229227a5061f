// Package tracelens normalizes raw browser performance-trace data into
// a causally-linked model of network requests, ready for dependency
// graph construction and page-load simulation.
//
// Quick start:
//
//	capture, err := trace.LoadCaptureFile("pageload.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := tracelens.Normalize(capture)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, req := range result.Requests {
//	    fmt.Println(req.RequestID, req.URL)
//	}
//
// Normalization is a pure in-memory transform: the same capture always
// yields the same request list, links, and ordering.
package tracelens
