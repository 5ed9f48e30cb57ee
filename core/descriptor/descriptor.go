package descriptor

import "fmt"

// InstanceDescriptor contains all the information required to create an
// object instance through a factory provider. Descriptors are plain value
// records with no identity beyond their field values: copy them freely and
// discard them once the construction request they describe has been served.
type InstanceDescriptor struct {
	// FactoryTag names the registered factory that must service the request.
	FactoryTag string
	// InstanceTag selects the concrete variant within that factory.
	InstanceTag string
	// InstanceName is the name to give the constructed instance. Empty is
	// permitted and yields an anonymous instance.
	InstanceName string
}

// New returns a descriptor with the given fields. No validation happens
// here; validity is a separate query, not a construction precondition.
func New(factoryTag, instanceTag, instanceName string) InstanceDescriptor {
	return InstanceDescriptor{
		FactoryTag:   factoryTag,
		InstanceTag:  instanceTag,
		InstanceName: instanceName,
	}
}

// IsValid reports whether the descriptor carries enough information to be
// used during object construction: both the factory tag and the instance tag
// must be non-empty. The instance name never participates.
func (d InstanceDescriptor) IsValid() bool {
	return d.FactoryTag != "" && d.InstanceTag != ""
}

func (d InstanceDescriptor) String() string {
	if d.InstanceName == "" {
		return fmt.Sprintf("%s/%s", d.FactoryTag, d.InstanceTag)
	}
	return fmt.Sprintf("%s/%s (%s)", d.FactoryTag, d.InstanceTag, d.InstanceName)
}
