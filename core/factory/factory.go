package factory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/instancekit/instancekit/core/descriptor"
)

var (
	// ErrInvalidDescriptor signals construction attempted with a descriptor
	// whose factory or instance tag is empty.
	ErrInvalidDescriptor = errors.New("invalid instance descriptor")
	// ErrUnknownFactory signals a factory name the provider does not own.
	ErrUnknownFactory = errors.New("unknown factory")
	// ErrUnknownTag signals an instance tag not present in the named factory.
	ErrUnknownTag = errors.New("unknown instance tag")
)

// Provider is the capability a component implements to expose one or more
// named factories. It is a pure interface with no state machine; single
// threaded call-in is assumed, and any exclusion needed for concurrent
// construction is the concrete provider's responsibility.
type Provider interface {
	// ProvidedFactories returns the names of all factories exposed through
	// this provider, in a stable order.
	ProvidedFactories() []string
	// ProvidedFactoryTags returns the instance tags valid within the named
	// factory, in a stable order, or nil when the name is not recognized.
	ProvidedFactoryTags(factoryName string) []string
	// CreateInstance constructs the instance described by d. Ownership of
	// the result transfers to the caller.
	CreateInstance(d descriptor.InstanceDescriptor) (any, error)
}

// Named is implemented by instances that accept the descriptor's instance
// name after construction.
type Named interface {
	SetObjectName(name string)
}

// Constructor builds one concrete variant within a factory.
type Constructor[T any] func() (T, error)

// Factory is a ready-made Provider exposing a single named factory whose
// variants share the type T. Constructors are registered per instance tag;
// registration order is preserved for tag enumeration.
type Factory[T any] struct {
	name string

	mu    sync.RWMutex
	tags  []string
	ctors map[string]Constructor[T]
}

// New returns an empty factory exposed under the given name.
func New[T any](name string) *Factory[T] {
	return &Factory[T]{name: name, ctors: make(map[string]Constructor[T])}
}

// Name returns the factory tag this factory is exposed under.
func (f *Factory[T]) Name() string { return f.name }

// Register adds a constructor for the given instance tag.
func (f *Factory[T]) Register(tag string, c Constructor[T]) error {
	if tag == "" {
		return fmt.Errorf("factory %s: empty instance tag", f.name)
	}
	if c == nil {
		return fmt.Errorf("factory %s: nil constructor for %s", f.name, tag)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.ctors[tag]; ok {
		return fmt.Errorf("factory %s: constructor already registered for %s", f.name, tag)
	}
	f.ctors[tag] = c
	f.tags = append(f.tags, tag)
	return nil
}

// Create instantiates the variant registered under tag.
func (f *Factory[T]) Create(tag string) (T, error) {
	f.mu.RLock()
	c, ok := f.ctors[tag]
	f.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q in factory %q", ErrUnknownTag, tag, f.name)
	}
	return c()
}

// ProvidedFactories implements Provider.
func (f *Factory[T]) ProvidedFactories() []string { return []string{f.name} }

// ProvidedFactoryTags implements Provider. Unrecognized factory names yield
// nil rather than an error.
func (f *Factory[T]) ProvidedFactoryTags(factoryName string) []string {
	if factoryName != f.name {
		return nil
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]string(nil), f.tags...)
}

// CreateInstance implements Provider. The descriptor's instance name, when
// non-empty, is handed to instances implementing Named.
func (f *Factory[T]) CreateInstance(d descriptor.InstanceDescriptor) (any, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDescriptor, d)
	}
	if d.FactoryTag != f.name {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFactory, d.FactoryTag)
	}
	inst, err := f.Create(d.InstanceTag)
	if err != nil {
		return nil, err
	}
	if d.InstanceName != "" {
		if n, ok := any(inst).(Named); ok {
			n.SetObjectName(d.InstanceName)
		}
	}
	return inst, nil
}
