package jurisdiction

import "fmt"

// UN M49 region hierarchy classifications.
//
// The three levels nest: Region > SubRegion > IntermediateRegion. Every
// jurisdiction belongs to exactly one value at each level; the
// ...Undefined zero value denotes "no assignment" (Antarctica has no
// region at all, and most jurisdictions have no intermediate region).
// The data is typeset from the UN methodology on standard country or
// area codes for statistical use (M49),
// https://unstats.un.org/unsd/methodology/m49/overview

// Region is the high level region a jurisdiction zones to.
type Region uint8

// SubRegion is a subdivision within a Region.
type SubRegion uint8

// IntermediateRegion is a subdivision within a SubRegion. Most
// sub-regions have no intermediate level.
type IntermediateRegion uint8

// String returns the UN M49 display name, e.g. "Europe".
// The Undefined value formats as "Undefined".
func (r Region) String() string {
	if int(r) >= numRegions {
		return fmt.Sprintf("Region(%d)", uint8(r))
	}
	return regionNames[r]
}

// Code returns the UN M49 numeric code for the region, or 0 for
// RegionUndefined.
func (r Region) Code() uint16 {
	if int(r) >= numRegions {
		return 0
	}
	return regionCodes[r]
}

// IsDefined reports whether the region carries a real assignment.
func (r Region) IsDefined() bool {
	return r != RegionUndefined && int(r) < numRegions
}

// Jurisdictions returns every jurisdiction classified under this
// region, in the compiled dataset order.
func (r Region) Jurisdictions() []Jurisdiction {
	if int(r) >= numRegions {
		return nil
	}
	return jurisdictionsFor(regionMembers[r])
}

// String returns the UN M49 display name, e.g. "Northern Europe".
func (s SubRegion) String() string {
	if int(s) >= numSubRegions {
		return fmt.Sprintf("SubRegion(%d)", uint8(s))
	}
	return subRegionNames[s]
}

// Code returns the UN M49 numeric code for the sub-region, or 0 for
// SubRegionUndefined.
func (s SubRegion) Code() uint16 {
	if int(s) >= numSubRegions {
		return 0
	}
	return subRegionCodes[s]
}

// IsDefined reports whether the sub-region carries a real assignment.
func (s SubRegion) IsDefined() bool {
	return s != SubRegionUndefined && int(s) < numSubRegions
}

// Jurisdictions returns every jurisdiction classified under this
// sub-region, in the compiled dataset order.
func (s SubRegion) Jurisdictions() []Jurisdiction {
	if int(s) >= numSubRegions {
		return nil
	}
	return jurisdictionsFor(subRegionMembers[s])
}

// String returns the UN M49 display name, e.g. "Channel Islands".
func (i IntermediateRegion) String() string {
	if int(i) >= numIntermediateRegions {
		return fmt.Sprintf("IntermediateRegion(%d)", uint8(i))
	}
	return intermediateRegionNames[i]
}

// Code returns the UN M49 numeric code for the intermediate region, or
// 0 for IntermediateRegionUndefined.
func (i IntermediateRegion) Code() uint16 {
	if int(i) >= numIntermediateRegions {
		return 0
	}
	return intermediateRegionCodes[i]
}

// IsDefined reports whether the intermediate region carries a real
// assignment.
func (i IntermediateRegion) IsDefined() bool {
	return i != IntermediateRegionUndefined && int(i) < numIntermediateRegions
}

// Jurisdictions returns every jurisdiction classified under this
// intermediate region, in the compiled dataset order.
func (i IntermediateRegion) Jurisdictions() []Jurisdiction {
	if int(i) >= numIntermediateRegions {
		return nil
	}
	return jurisdictionsFor(intermediateRegionMembers[i])
}

// ParseRegion resolves a UN M49 region display name, e.g. "Europe".
// The empty string resolves to RegionUndefined, mirroring how the
// compiler classifies records with no region assignment; any other
// unknown name is an error.
func ParseRegion(s string) (Region, error) {
	if s == "" {
		return RegionUndefined, nil
	}
	if v, ok := lookups().regionValues[s]; ok {
		return v, nil
	}
	return RegionUndefined, fmt.Errorf("unrecognized region name: %q", s)
}

// ParseSubRegion resolves a UN M49 sub-region display name, e.g.
// "Northern Europe". Empty-string and error semantics match ParseRegion.
func ParseSubRegion(s string) (SubRegion, error) {
	if s == "" {
		return SubRegionUndefined, nil
	}
	if v, ok := lookups().subRegionValues[s]; ok {
		return v, nil
	}
	return SubRegionUndefined, fmt.Errorf("unrecognized sub-region name: %q", s)
}

// ParseIntermediateRegion resolves a UN M49 intermediate region display
// name, e.g. "Caribbean". Empty-string and error semantics match
// ParseRegion.
func ParseIntermediateRegion(s string) (IntermediateRegion, error) {
	if s == "" {
		return IntermediateRegionUndefined, nil
	}
	if v, ok := lookups().intermediateRegionValues[s]; ok {
		return v, nil
	}
	return IntermediateRegionUndefined, fmt.Errorf("unrecognized intermediate region name: %q", s)
}
