// Package metrics defines the sink interface through which registry and
// tooling code report construction outcomes and descriptor decode failures.
// Concrete exporters live under infra/metrics.
package metrics

// ConstructionEvent records the outcome of one CreateInstance call.
type ConstructionEvent struct {
	FactoryTag  string
	InstanceTag string
	OK          bool
}

// Sink receives construction and decode events.
type Sink interface {
	RecordConstruction(ev ConstructionEvent) error
	// RecordDecodeFailure counts a failed descriptor decode; kind names the
	// failure class, e.g. "start_marker" or "end_marker".
	RecordDecodeFailure(kind string) error
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordConstruction(ConstructionEvent) error { return nil }
func (NopSink) RecordDecodeFailure(string) error           { return nil }
