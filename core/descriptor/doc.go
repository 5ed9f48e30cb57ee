// Package descriptor defines the instance descriptor: the value record that
// fully specifies one construction request against a factory provider and
// survives a serialization boundary. A descriptor names the factory to use,
// the instance tag within that factory and, optionally, the name the new
// instance must receive.
//
// Example usage:
//
//	d := descriptor.New("Qtilities.ObserverFactory", "Observer", "MyObserver")
//	var buf bytes.Buffer
//	if err := d.EncodeBinary(&buf); err != nil {
//	    return err
//	}
//	var back descriptor.InstanceDescriptor
//	if err := back.DecodeBinary(&buf); err != nil {
//	    return err
//	}
package descriptor
