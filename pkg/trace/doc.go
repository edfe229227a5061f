// Package trace defines the input contract between the trace-ingestion
// collaborator and the normalization engine: raw trace events, the
// structured trace-engine result (synthetic network-request events,
// worker tables, per-navigation metric scores), and the Capture envelope
// that bundles both for one page load.
//
// The package is types-only plus JSON loading; it performs no
// normalization itself.
package trace
