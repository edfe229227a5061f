package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/chromedp/cdproto/network"

	"github.com/crimson-sun/tracelens/internal/output"
	"github.com/crimson-sun/tracelens/internal/source"
	"github.com/crimson-sun/tracelens/pkg/trace"
)

type fakeSource struct {
	capture *trace.Capture
	err     error
}

func (s *fakeSource) Load(context.Context, source.Config) (*trace.Capture, error) {
	return s.capture, s.err
}

type collectOutput struct {
	records  []output.Record
	writeErr error
	closed   bool
}

func (o *collectOutput) Write(_ context.Context, rec output.Record) error {
	if o.writeErr != nil {
		return o.writeErr
	}
	o.records = append(o.records, rec)
	return nil
}

func (o *collectOutput) Close() error {
	o.closed = true
	return nil
}

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
		}},
		EngineResult: trace.EngineResult{
			Meta: trace.Meta{
				MainFrameID:          "MAIN",
				MainFrameNavigations: []*trace.Navigation{{ID: "nav1", Pid: 1}},
				ThreadsInProcess: map[trace.ProcessID]map[trace.ThreadID]trace.ThreadInfo{
					1: {10: {Name: "CrRendererMain"}},
				},
			},
			NetworkRequests: []*trace.NetworkRequestEvent{
				netEvent("A", "https://example.com/", 100_000),
				netEvent("B", "https://example.com/app.js", 400_000),
			},
		},
	}
}

func TestRunWritesEveryRequest(t *testing.T) {
	out := &collectOutput{}
	p := New(&fakeSource{capture: testCapture()}, out)

	if err := p.Run(context.Background(), source.Config{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(out.records) != 2 {
		t.Fatalf("wrote %d records, want 2", len(out.records))
	}
	if out.records[0].RequestID != "A" || out.records[1].RequestID != "B" {
		t.Errorf("record ids = %q, %q", out.records[0].RequestID, out.records[1].RequestID)
	}
}

func TestRunSourceErrorAbortsBeforeOutput(t *testing.T) {
	loadErr := errors.New("no such capture")
	out := &collectOutput{}
	p := New(&fakeSource{err: loadErr}, out)

	err := p.Run(context.Background(), source.Config{})
	if !errors.Is(err, loadErr) {
		t.Fatalf("Run error = %v, want wrapped load error", err)
	}
	if len(out.records) != 0 {
		t.Errorf("wrote %d records after load failure", len(out.records))
	}
}

func TestRunIncompatibleTraceWritesNothing(t *testing.T) {
	capture := testCapture()
	capture.EngineResult.NetworkRequests[0].Data.ConnectionID = nil
	out := &collectOutput{}
	p := New(&fakeSource{capture: capture}, out)

	err := p.Run(context.Background(), source.Config{})
	if !errors.Is(err, trace.ErrIncompatibleTrace) {
		t.Fatalf("Run error = %v, want ErrIncompatibleTrace", err)
	}
	if len(out.records) != 0 {
		t.Errorf("wrote %d records for incompatible capture", len(out.records))
	}
}

func TestRunOutputErrorStops(t *testing.T) {
	writeErr := errors.New("sink broken")
	out := &collectOutput{writeErr: writeErr}
	p := New(&fakeSource{capture: testCapture()}, out)

	err := p.Run(context.Background(), source.Config{})
	if !errors.Is(err, writeErr) {
		t.Fatalf("Run error = %v, want wrapped write error", err)
	}
}

func TestCloseClosesOutput(t *testing.T) {
	out := &collectOutput{}
	p := New(&fakeSource{capture: testCapture()}, out)
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !out.closed {
		t.Error("output not closed")
	}
}
