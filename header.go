package opendrive

// Header carries the document metadata. Only revision 1.7 documents are
// accepted by the Parser.
type Header struct {
	RevMajor uint16
	RevMinor uint16
	Name     *string
	Version  *string
	Date     *string
	North    *Length
	South    *Length
	East     *Length
	West     *Length
	Vendor   *string

	GeoReference *GeoReference
	Offset       *Offset

	Additional AdditionalData
}

// GeoReference holds the projection definition of the inertial frame,
// usually a PROJ string carried as the element text.
type GeoReference struct {
	Text string

	Additional AdditionalData
}

// Offset shifts and rotates the whole inertial frame relative to the
// geographic reference.
type Offset struct {
	X   Length
	Y   Length
	Z   Length
	Hdg Angle

	Additional AdditionalData
}
