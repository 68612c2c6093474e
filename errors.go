package opendrive

import (
	"fmt"
)

// MalformedXMLError reports input that is not well-formed XML or whose root
// element is not an OpenDRIVE document.
type MalformedXMLError struct {
	Reason string
	Cause  error
}

func (e *MalformedXMLError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Malformed XML: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("Malformed XML: %s", e.Reason)
}

func (e *MalformedXMLError) Unwrap() error {
	return e.Cause
}

// UnsupportedVersionError reports a document declaring a standard revision
// other than 1.7.
type UnsupportedVersionError struct {
	Major string
	Minor string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("Unsupported OpenDRIVE revision %s.%s, only 1.7 can be handled", e.Major, e.Minor)
}

// MissingFieldError reports a required attribute or child element absent
// from the source document.
type MissingFieldError struct {
	Path    string
	Element string
	Field   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Element '%s' misses required field '%s' at %s", e.Element, e.Field, e.Path)
}

// EnumError reports an attribute value outside its defined vocabulary.
type EnumError struct {
	Path    string
	Element string
	Field   string
	Value   string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("Attribute '%s' of element '%s' has value '%s' outside of its vocabulary at %s", e.Field, e.Element, e.Value, e.Path)
}

// NumberError reports attribute text that does not parse as a number.
type NumberError struct {
	Path    string
	Element string
	Field   string
	Value   string
	Cause   error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("Attribute '%s' of element '%s' is not a valid number: '%s' at %s", e.Field, e.Element, e.Value, e.Path)
}

func (e *NumberError) Unwrap() error {
	return e.Cause
}

// DomainError reports a number that parses but violates the documented range
// of its field, e.g. a negative length.
type DomainError struct {
	Path    string
	Element string
	Field   string
	Value   float64
	Reason  string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("Attribute '%s' of element '%s' is out of domain (%s): %v at %s", e.Field, e.Element, e.Reason, e.Value, e.Path)
}

// ReferenceError reports an id reference that cannot possibly resolve,
// e.g. an empty elementId. Existence across the network is not checked.
type ReferenceError struct {
	Path    string
	Element string
	Field   string
	Value   string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("Attribute '%s' of element '%s' holds unresolvable reference '%s' at %s", e.Field, e.Element, e.Value, e.Path)
}

// StructureError reports a violated structural invariant: an empty lane
// side, a geometry without exactly one shape, gaps or overlaps in an
// s-ordered sequence.
type StructureError struct {
	Path    string
	Element string
	Reason  string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("Element '%s' violates document structure (%s) at %s", e.Element, e.Reason, e.Path)
}

// DuplicateIDError reports an id that appears twice where ids must be
// unique, e.g. two lanes of one side sharing an id.
type DuplicateIDError struct {
	Path    string
	Element string
	ID      string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("Element '%s' holds duplicated id '%s' at %s", e.Element, e.ID, e.Path)
}

// OffsetRangeError reports a geometry evaluation outside [0, length].
type OffsetRangeError struct {
	Offset float64
	Length float64
}

func (e *OffsetRangeError) Error() string {
	return fmt.Sprintf("Offset %v is outside of the geometry range [0, %v]", e.Offset, e.Length)
}

// WriteError reports a serialization failure: a broken sink or a model
// value that cannot be expressed in the format.
type WriteError struct {
	Reason string
	Cause  error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Can't write OpenDRIVE document: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("Can't write OpenDRIVE document: %s", e.Reason)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Diagnostic is a non-fatal finding collected while reading: unknown
// elements or attributes skipped to keep forward compatibility.
type Diagnostic struct {
	Path    string
	Name    string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Path, d.Name, d.Message)
}
