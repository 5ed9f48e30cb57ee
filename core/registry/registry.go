// Package registry aggregates factory providers and resolves instance
// descriptors to the provider owning the named factory. A Registry is plain
// owned state: create as many as needed and pass them explicitly; nothing
// here is process-global.
package registry

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/instancekit/instancekit/core/descriptor"
	"github.com/instancekit/instancekit/core/factory"
	"github.com/instancekit/instancekit/core/logger"
	"github.com/instancekit/instancekit/core/metrics"
)

// Registry maps factory names to the providers that own them.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]factory.Provider
	order     []string

	log  logger.Logger
	sink metrics.Sink
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration and construction events.
func WithLogger(l logger.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMetrics sets the sink receiving construction events.
func WithMetrics(s metrics.Sink) Option {
	return func(r *Registry) {
		if s != nil {
			r.sink = s
		}
	}
}

// New returns an empty registry. Logger and metrics default to no-ops.
func New(opts ...Option) *Registry {
	r := &Registry{
		providers: make(map[string]factory.Provider),
		log:       logger.Nop{},
		sink:      metrics.NopSink{},
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// RegisterProvider claims every factory name p provides. A name already
// claimed by another provider rejects the registration as a whole, leaving
// none of p's names registered.
func (r *Registry) RegisterProvider(p factory.Provider) error {
	if p == nil {
		return fmt.Errorf("registry: nil provider")
	}
	names := p.ProvidedFactories()
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range names {
		if name == "" {
			return fmt.Errorf("registry: provider exposes an empty factory name")
		}
		if _, ok := r.providers[name]; ok {
			return fmt.Errorf("registry: factory %q already registered", name)
		}
	}
	for _, name := range names {
		r.providers[name] = p
		r.order = append(r.order, name)
	}
	r.log.Debugw("provider registered", map[string]any{"factories": names})
	return nil
}

// Provider returns the provider owning the named factory.
func (r *Registry) Provider(factoryName string) (factory.Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[factoryName]
	return p, ok
}

// FactoryNames returns all registered factory names in registration order.
func (r *Registry) FactoryNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Tags returns the instance tags of the named factory, nil when the factory
// is unknown.
func (r *Registry) Tags(factoryName string) []string {
	p, ok := r.Provider(factoryName)
	if !ok {
		return nil
	}
	return p.ProvidedFactoryTags(factoryName)
}

// CreateInstance validates d, resolves the provider owning d.FactoryTag and
// delegates construction to it. Every request is assigned an id carried in
// the structured logs, and its outcome is recorded on the metrics sink.
func (r *Registry) CreateInstance(d descriptor.InstanceDescriptor) (any, error) {
	id := uuid.NewString()
	if !d.IsValid() {
		r.record(d, false)
		r.log.Warnf("construction %s rejected: %v", id, factory.ErrInvalidDescriptor)
		return nil, fmt.Errorf("%w: %s", factory.ErrInvalidDescriptor, d)
	}
	p, ok := r.Provider(d.FactoryTag)
	if !ok {
		r.record(d, false)
		r.log.Warnf("construction %s rejected: no provider for factory %q", id, d.FactoryTag)
		return nil, fmt.Errorf("%w: %q", factory.ErrUnknownFactory, d.FactoryTag)
	}
	inst, err := p.CreateInstance(d)
	if err != nil {
		r.record(d, false)
		r.log.Errorf("construction %s failed for %s: %v", id, d, err)
		return nil, err
	}
	r.record(d, true)
	r.log.Debugw("instance constructed", map[string]any{
		"id":      id,
		"factory": d.FactoryTag,
		"tag":     d.InstanceTag,
		"name":    d.InstanceName,
	})
	return inst, nil
}

func (r *Registry) record(d descriptor.InstanceDescriptor, ok bool) {
	ev := metrics.ConstructionEvent{FactoryTag: d.FactoryTag, InstanceTag: d.InstanceTag, OK: ok}
	if err := r.sink.RecordConstruction(ev); err != nil {
		r.log.Warnf("metrics sink: %v", err)
	}
}
