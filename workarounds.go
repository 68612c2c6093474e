package opendrive

// Workarounds toggles compatibility behavior for known interoperability
// defects of external OpenDRIVE consumers. The zero value keeps strict
// standard conformance. A configuration is handed to every Parser/Writer
// explicitly, there is no process-wide state.
type Workarounds struct {
	// SumoIssue10301 makes the reader treat a paramPoly3 element without a
	// pRange attribute as pRange="normalized" instead of failing on the
	// missing required field. SUMO used to export such documents, see
	// https://github.com/eclipse/sumo/issues/10301.
	SumoIssue10301 bool
	// SumoRoadMarkColor makes the writer emit the roadMark color attribute
	// even when it equals the default "standard" and could be omitted.
	// SUMO misreads road marks when the attribute is absent.
	SumoRoadMarkColor bool
}

// Sumo returns the configuration with every SUMO workaround enabled.
func Sumo() Workarounds {
	return Workarounds{
		SumoIssue10301:    true,
		SumoRoadMarkColor: true,
	}
}
