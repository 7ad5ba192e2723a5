package jurisdiction

import "fmt"

// Jurisdiction is a pointer sized value identifying a country or area
// of the world.
//
// A Jurisdiction holds a single reference into the compiled definition
// table; it never owns or copies classification data, so passing it
// around costs one word and every accessor is a plain field read.
// Construct one with FromAlpha2, FromAlpha3, or Parse. The zero value
// is not a valid Jurisdiction; accessors on it panic.
type Jurisdiction struct {
	def *definition
}

// FromAlpha2 returns the jurisdiction identified by a two letter code.
// Total and infallible for every compiled Alpha2 value; a value forged
// outside the compiled set panics, as for resolve.
func FromAlpha2(code Alpha2) Jurisdiction {
	if int(code) >= numAlpha2 {
		panic(fmt.Sprintf("jurisdiction: Alpha2(%d) outside the compiled code set", uint8(code)))
	}
	return Jurisdiction{def: resolve(alpha2Countries[code])}
}

// FromAlpha3 returns the jurisdiction identified by a three letter
// code. Total and infallible, as for FromAlpha2.
func FromAlpha3(code Alpha3) Jurisdiction {
	if int(code) >= numAlpha3 {
		panic(fmt.Sprintf("jurisdiction: Alpha3(%d) outside the compiled code set", uint8(code)))
	}
	return Jurisdiction{def: resolve(alpha3Countries[code])}
}

// Parse resolves the canonical uppercase textual form of an alpha-2 or
// alpha-3 code, trying alpha-2 first. Matching is exact, with no case
// folding or trimming; input that matches neither set yields an
// *UnrecognizedCodeError carrying the original text.
func Parse(s string) (Jurisdiction, error) {
	if code, err := ParseAlpha2(s); err == nil {
		return FromAlpha2(code), nil
	}
	if code, err := ParseAlpha3(s); err == nil {
		return FromAlpha3(code), nil
	}
	return Jurisdiction{}, &UnrecognizedCodeError{Code: s}
}

// Name returns the english name of the jurisdiction.
func (j Jurisdiction) Name() string {
	return j.def.name
}

// CountryCode returns the ISO 3166-1 numeric country code.
func (j Jurisdiction) CountryCode() uint16 {
	return j.def.countryCode
}

// Alpha2 returns the two letter ISO 3166-1 code.
func (j Jurisdiction) Alpha2() Alpha2 {
	return j.def.alpha2
}

// Alpha3 returns the three letter ISO 3166-1 code.
func (j Jurisdiction) Alpha3() Alpha3 {
	return j.def.alpha3
}

// Subdivision returns the ISO 3166-2 subdivision prefix for the
// jurisdiction, e.g. "ISO 3166-2:NO".
func (j Jurisdiction) Subdivision() string {
	return j.def.subdivision
}

// Region returns the UN M49 region the jurisdiction is situated in.
func (j Jurisdiction) Region() Region {
	return j.def.region
}

// SubRegion returns the UN M49 sub-region the jurisdiction is situated
// in.
func (j Jurisdiction) SubRegion() SubRegion {
	return j.def.subRegion
}

// IntermediateRegion returns the UN M49 intermediate region the
// jurisdiction is situated in. Not all jurisdictions have one; those
// return IntermediateRegionUndefined.
func (j Jurisdiction) IntermediateRegion() IntermediateRegion {
	return j.def.intermediateRegion
}

// RegionCode returns the UN M49 numeric identifier of the region, or 0
// when the jurisdiction has no region assignment.
func (j Jurisdiction) RegionCode() uint16 {
	return j.def.regionCode
}

// SubRegionCode returns the UN M49 numeric identifier of the
// sub-region, or 0 when the jurisdiction has no sub-region assignment.
func (j Jurisdiction) SubRegionCode() uint16 {
	return j.def.subRegionCode
}

// IntermediateRegionCode returns the UN M49 numeric identifier of the
// intermediate region. ok is false exactly when the jurisdiction has no
// intermediate region.
func (j Jurisdiction) IntermediateRegionCode() (code uint16, ok bool) {
	if j.def.intermediateRegionCode == 0 {
		return 0, false
	}
	return j.def.intermediateRegionCode, true
}

// Equal reports whether two jurisdictions identify the same country.
// Equality is defined by numeric country code, never by reference
// identity: handles constructed independently for the same country
// compare equal.
func (j Jurisdiction) Equal(other Jurisdiction) bool {
	return j.def.countryCode == other.def.countryCode
}

// Is reports whether the jurisdiction carries the given two letter
// code.
func (j Jurisdiction) Is(code Alpha2) bool {
	return j.def.alpha2 == code
}

// IsAlpha3 reports whether the jurisdiction carries the given three
// letter code.
func (j Jurisdiction) IsAlpha3(code Alpha3) bool {
	return j.def.alpha3 == code
}

// String formats the jurisdiction as its two letter code.
func (j Jurisdiction) String() string {
	return j.def.alpha2.String()
}

// MarshalText implements encoding.TextMarshaler, emitting the alpha-2
// form.
func (j Jurisdiction) MarshalText() ([]byte, error) {
	return j.def.alpha2.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting either
// the alpha-2 or the alpha-3 form via Parse.
func (j *Jurisdiction) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*j = parsed
	return nil
}

// InRegion returns every jurisdiction zoning to the given region.
func InRegion(r Region) []Jurisdiction {
	return r.Jurisdictions()
}

// InSubRegion returns every jurisdiction zoning to the given
// sub-region.
func InSubRegion(s SubRegion) []Jurisdiction {
	return s.Jurisdictions()
}

// InIntermediateRegion returns every jurisdiction zoning to the given
// intermediate region.
func InIntermediateRegion(i IntermediateRegion) []Jurisdiction {
	return i.Jurisdictions()
}

// All returns every jurisdiction in the compiled dataset, in dataset
// order.
func All() []Jurisdiction {
	out := make([]Jurisdiction, numDefinitions)
	for i := range definitionTable {
		out[i] = Jurisdiction{def: &definitionTable[i]}
	}
	return out
}

// jurisdictionsFor resolves a compiled reverse-index bucket of numeric
// country codes into handles, preserving bucket order.
func jurisdictionsFor(countryCodes []uint16) []Jurisdiction {
	out := make([]Jurisdiction, len(countryCodes))
	for i, cc := range countryCodes {
		out[i] = Jurisdiction{def: resolve(cc)}
	}
	return out
}
