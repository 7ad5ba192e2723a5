//go:generate go run ./cmd/jurisdictiongen -config jurisdictiongen.yaml

// Package jurisdiction provides lightweight static classification of
// countries and areas of the world.
//
// Information about a jurisdiction includes:
//   - ISO 3166-1 Alpha2 and Alpha3 character codes.
//   - ISO 3166-1 numeric country code.
//   - UN M49 region classifications (region, sub-region, intermediate region).
//
// The Jurisdiction value is the size of a single pointer and is suitable
// for transfer across API surfaces throughout an ecosystem. Serialization
// on API boundaries uses the standardized textual classification formats
// via encoding.TextMarshaler / encoding.TextUnmarshaler.
//
// All static data is compiled ahead of time by cmd/jurisdictiongen from
// data/country-region.json into the *_tables.go files. At runtime the
// package performs no I/O: the lookup tables are materialized once, on
// first use, and are read-only thereafter, so every operation is a
// deterministic O(1) traversal safe for concurrent use.
//
// Retrieve a jurisdiction from an API boundary and gate on the supported
// set:
//
//	func supportedJurisdiction(alpha string) (jurisdiction.Jurisdiction, error) {
//		j, err := jurisdiction.Parse(alpha)
//		if err != nil {
//			return jurisdiction.Jurisdiction{}, err
//		}
//		switch j.Alpha2() {
//		case jurisdiction.NO, jurisdiction.SE, jurisdiction.DK:
//			return j, nil
//		}
//		return jurisdiction.Jurisdiction{}, errors.New("only scandinavian countries are supported")
//	}
//
// Construct from a code constant and query the region hierarchy:
//
//	j := jurisdiction.FromAlpha2(jurisdiction.NO)
//	j.Name()        // "Norway"
//	j.CountryCode() // 578
//	j.Region()      // jurisdiction.RegionEurope
//	j.SubRegion()   // jurisdiction.SubRegionNorthernEurope
package jurisdiction
