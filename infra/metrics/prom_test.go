package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/instancekit/instancekit/core/metrics"
)

func TestPromSink_RecordConstruction(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSink(reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	if err := sink.RecordConstruction(coremetrics.ConstructionEvent{
		FactoryTag:  "Qtilities.ObserverFactory",
		InstanceTag: "Observer",
		OK:          true,
	}); err != nil {
		t.Fatalf("record error: %v", err)
	}

	expected := `
# HELP instance_constructions_total Total number of instance construction requests
# TYPE instance_constructions_total counter
instance_constructions_total{factory="Qtilities.ObserverFactory",ok="true",tag="Observer"} 1
`
	if err := testutil.CollectAndCompare(sink.constructions, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
}

func TestPromSink_RecordDecodeFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSink(reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	if err := sink.RecordDecodeFailure("start_marker"); err != nil {
		t.Fatalf("record error: %v", err)
	}

	expected := `
# HELP descriptor_decode_failures_total Total number of failed descriptor decodes
# TYPE descriptor_decode_failures_total counter
descriptor_decode_failures_total{kind="start_marker"} 1
`
	if err := testutil.CollectAndCompare(sink.decodeFails, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
}

func TestPromSink_AlreadyRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSink(reg); err != nil {
		t.Fatalf("first sink: %v", err)
	}
	if _, err := NewPromSink(reg); err != nil {
		t.Fatalf("second sink should reuse collectors: %v", err)
	}
}

func TestMultiSink(t *testing.T) {
	reg := prometheus.NewRegistry()
	prom, err := NewPromSink(reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	multi := NewMultiSink(coremetrics.NopSink{}, prom)
	if err := multi.RecordConstruction(coremetrics.ConstructionEvent{FactoryTag: "f", InstanceTag: "t", OK: false}); err != nil {
		t.Fatalf("multi record: %v", err)
	}
	if err := multi.RecordDecodeFailure("end_marker"); err != nil {
		t.Fatalf("multi decode failure: %v", err)
	}
	if got := testutil.ToFloat64(prom.constructions.WithLabelValues("f", "t", "false")); got != 1 {
		t.Fatalf("expected 1 construction, got %v", got)
	}
}
