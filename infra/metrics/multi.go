package metrics

import coremetrics "github.com/instancekit/instancekit/core/metrics"

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordConstruction forwards the event to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordConstruction(ev coremetrics.ConstructionEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordConstruction(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordDecodeFailure forwards the failure to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordDecodeFailure(kind string) error {
	for _, s := range m.Sinks {
		if err := s.RecordDecodeFailure(kind); err != nil {
			return err
		}
	}
	return nil
}
