package jurisdiction

// definition is the compiled classification record for a single
// jurisdiction. One definition exists per dataset record, emitted by
// cmd/jurisdictiongen into definitionTable; definitions are never
// constructed at runtime, only referenced.
type definition struct {
	countryCode uint16
	name        string
	alpha2      Alpha2
	alpha3      Alpha3
	// subdivision is the ISO 3166-2 subdivision prefix, e.g. "ISO 3166-2:NO".
	subdivision        string
	region             Region
	subRegion          SubRegion
	intermediateRegion IntermediateRegion
	regionCode         uint16
	subRegionCode      uint16
	// intermediateRegionCode is 0 when the jurisdiction has no
	// intermediate region.
	intermediateRegionCode uint16
}
