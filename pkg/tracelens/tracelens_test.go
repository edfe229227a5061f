package tracelens

import (
	"testing"

	"github.com/chromedp/cdproto/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/tracelens/pkg/netrecord"
	"github.com/crimson-sun/tracelens/pkg/trace"
)

func netEvent(id, url string, ts int64) *trace.NetworkRequestEvent {
	connID := int64(1)
	reused := false
	return &trace.NetworkRequestEvent{
		Pid: 1,
		Tid: 10,
		Ts:  ts,
		Data: trace.NetworkRequestData{
			RequestID:        id,
			URL:              url,
			ResourceType:     network.ResourceTypeDocument,
			StatusCode:       200,
			ConnectionID:     &connID,
			ConnectionReused: &reused,
			Finished:         true,
			SyntheticData: trace.SyntheticData{
				DownloadStart: ts + 50_000,
				FinishTime:    ts + 100_000,
			},
		},
	}
}

func testCapture() *trace.Capture {
	return &trace.Capture{
		Trace: trace.Trace{Events: []*trace.Event{
			{Name: "navigationStart", Pid: 1, Tid: 10, Ts: 50_000},
			{Name: "compositorFrame", Pid: 1, Tid: 11, Ts: 60_000},
		}},
		EngineResult: trace.EngineResult{
			Meta: trace.Meta{
				MainFrameID:          "MAIN",
				MainFrameNavigations: []*trace.Navigation{{ID: "nav1", Pid: 1}},
				ThreadsInProcess: map[trace.ProcessID]map[trace.ThreadID]trace.ThreadInfo{
					1: {10: {Name: "CrRendererMain"}, 11: {Name: "Compositor"}},
				},
			},
			NetworkRequests: []*trace.NetworkRequestEvent{
				netEvent("A", "https://example.com/", 100_000),
				netEvent("B", "https://example.com/app.js", 400_000),
			},
			PageLoadMetrics: trace.PageLoadMetrics{
				ScoresByFrame: map[string]map[string]trace.MetricScores{
					"MAIN": {"nav1": {
						trace.MetricFCP: {Event: &trace.Event{Ts: 900_000}},
					}},
				},
			},
		},
	}
}

func TestNormalize(t *testing.T) {
	result, err := Normalize(testCapture())
	require.NoError(t, err)

	require.Len(t, result.Requests, 2)
	assert.Equal(t, "A", result.Requests[0].RequestID)
	assert.Equal(t, "B", result.Requests[1].RequestID)

	require.Len(t, result.MainThreadEvents, 1)
	assert.Equal(t, "navigationStart", result.MainThreadEvents[0].Name)

	assert.Equal(t, "https://example.com/", result.URL.RequestedURL)
	assert.Equal(t, "https://example.com/", result.URL.MainDocumentURL)
}

func TestNormalizeWithNavigationURLs(t *testing.T) {
	override := netrecord.NavigationURLs{
		RequestedURL:      "https://start.example.com/",
		MainDocumentURL:   "https://example.com/",
		FinalDisplayedURL: "https://example.com/#app",
	}
	result, err := Normalize(testCapture(), WithNavigationURLs(override))
	require.NoError(t, err)
	assert.Equal(t, override, result.URL)
}

func TestNormalizeWithTimeRange(t *testing.T) {
	result, err := Normalize(testCapture(), WithTimeRange(0, 200_000))
	require.NoError(t, err)
	require.Len(t, result.Requests, 1)
	assert.Equal(t, "A", result.Requests[0].RequestID)
}

func TestNormalizeIncompatibleTrace(t *testing.T) {
	capture := testCapture()
	capture.EngineResult.NetworkRequests[0].Data.ConnectionID = nil
	_, err := Normalize(capture)
	require.ErrorIs(t, err, trace.ErrIncompatibleTrace)
}

func TestMetrics(t *testing.T) {
	m, err := Metrics(testCapture())
	require.NoError(t, err)
	assert.Equal(t, int64(900_000), m.FirstContentfulPaint)
	assert.Nil(t, m.LargestContentfulPaint)
}

func TestMetricsMissingScores(t *testing.T) {
	capture := testCapture()
	capture.EngineResult.PageLoadMetrics = trace.PageLoadMetrics{}
	_, err := Metrics(capture)
	require.ErrorIs(t, err, trace.ErrMissingMetrics)
}
