package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/instancekit/instancekit/core/metrics"
)

// PromSink records construction and decode events in Prometheus metrics.
type PromSink struct {
	constructions *prometheus.CounterVec
	decodeFails   *prometheus.CounterVec
}

// NewPromSink registers the collectors on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the
// collectors are already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	constructions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "instance_constructions_total",
		Help: "Total number of instance construction requests",
	}, []string{"factory", "tag", "ok"})
	decodeFails := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "descriptor_decode_failures_total",
		Help: "Total number of failed descriptor decodes",
	}, []string{"kind"})

	if err := reg.Register(constructions); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			constructions = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(decodeFails); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			decodeFails = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{constructions: constructions, decodeFails: decodeFails}, nil
}

// RecordConstruction increments the construction counter for the event.
func (s *PromSink) RecordConstruction(ev coremetrics.ConstructionEvent) error {
	s.constructions.WithLabelValues(ev.FactoryTag, ev.InstanceTag, strconv.FormatBool(ev.OK)).Inc()
	return nil
}

// RecordDecodeFailure increments the decode failure counter for kind.
func (s *PromSink) RecordDecodeFailure(kind string) error {
	s.decodeFails.WithLabelValues(kind).Inc()
	return nil
}
