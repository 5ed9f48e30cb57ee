package descriptor

import (
	"errors"

	"github.com/beevik/etree"
)

// Attribute names used on the descriptor's owning element. The descriptor
// defines no child elements of its own.
const (
	AttrFactoryTag   = "FactoryTag"
	AttrInstanceTag  = "InstanceTag"
	AttrInstanceName = "InstanceName"
)

// DefaultFactoryTag is substituted on decode when the element carries no
// FactoryTag attribute. Documents written before the factory tag field
// existed omit it, so absence is repaired rather than rejected.
const DefaultFactoryTag = "Qtilities"

var errNilElement = errors.New("descriptor: nil element")

// EncodeXML sets the descriptor's fields as attributes on e. The instance
// name attribute is omitted for anonymous descriptors. The element is
// borrowed for the duration of the call only.
func (d InstanceDescriptor) EncodeXML(e *etree.Element) error {
	if e == nil {
		return errNilElement
	}
	e.CreateAttr(AttrFactoryTag, d.FactoryTag)
	e.CreateAttr(AttrInstanceTag, d.InstanceTag)
	if d.InstanceName != "" {
		e.CreateAttr(AttrInstanceName, d.InstanceName)
	}
	return nil
}

// DecodeXML reads the descriptor's fields back from the attributes of e,
// substituting DefaultFactoryTag when the factory tag attribute is absent.
// Missing optional attributes are never an error; failure is reserved for
// an unusable element.
func (d *InstanceDescriptor) DecodeXML(e *etree.Element) error {
	return d.DecodeXMLWithDefault(e, DefaultFactoryTag)
}

// DecodeXMLWithDefault is DecodeXML with a caller-chosen fallback factory
// tag, for document fleets that historically used an application-specific
// default.
func (d *InstanceDescriptor) DecodeXMLWithDefault(e *etree.Element, defaultFactoryTag string) error {
	if e == nil {
		return errNilElement
	}
	d.FactoryTag = e.SelectAttrValue(AttrFactoryTag, defaultFactoryTag)
	d.InstanceTag = e.SelectAttrValue(AttrInstanceTag, "")
	d.InstanceName = e.SelectAttrValue(AttrInstanceName, "")
	return nil
}
