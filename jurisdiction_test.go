package jurisdiction

import (
	"testing"

	. "gopkg.in/check.v1"
)

// Hook up gocheck into the "go test" runner.
func Test(t *testing.T) { TestingT(t) }

type JurisdictionSuite struct{}

var _ = Suite(&JurisdictionSuite{})

func (s *JurisdictionSuite) TestFromAlpha2(c *C) {
	j := FromAlpha2(NO)
	c.Assert(j.Name(), Equals, "Norway")
	c.Assert(j.CountryCode(), Equals, uint16(578))
	c.Assert(j.Alpha2(), Equals, NO)
	c.Assert(j.Alpha3(), Equals, NOR)
	c.Assert(j.Subdivision(), Equals, "ISO 3166-2:NO")
	c.Assert(j.Region(), Equals, RegionEurope)
	c.Assert(j.SubRegion(), Equals, SubRegionNorthernEurope)
	c.Assert(j.IntermediateRegion(), Equals, IntermediateRegionUndefined)
	c.Assert(j.RegionCode(), Equals, uint16(150))
	c.Assert(j.SubRegionCode(), Equals, uint16(154))

	code, ok := j.IntermediateRegionCode()
	c.Assert(ok, Equals, false)
	c.Assert(code, Equals, uint16(0))
}

func (s *JurisdictionSuite) TestFromAlpha3(c *C) {
	j := FromAlpha3(CHE)
	c.Assert(j.Name(), Equals, "Switzerland")
	c.Assert(j.Alpha2(), Equals, CH)
	c.Assert(j.SubRegion(), Equals, SubRegionWesternEurope)
}

func (s *JurisdictionSuite) TestEquality(c *C) {
	// Handles constructed through different codes for the same country
	// compare equal.
	a := FromAlpha2(NO)
	b := FromAlpha3(NOR)
	c.Assert(a.Equal(b), Equals, true)
	c.Assert(b.Equal(a), Equals, true)

	c.Assert(a.Equal(FromAlpha2(SE)), Equals, false)

	c.Assert(a.Is(NO), Equals, true)
	c.Assert(a.Is(SE), Equals, false)
	c.Assert(a.IsAlpha3(NOR), Equals, true)
	c.Assert(a.IsAlpha3(SWE), Equals, false)
}

func (s *JurisdictionSuite) TestParse(c *C) {
	j, err := Parse("NO")
	c.Assert(err, IsNil)
	c.Assert(j.Name(), Equals, "Norway")

	j, err = Parse("NOR")
	c.Assert(err, IsNil)
	c.Assert(j.Name(), Equals, "Norway")

	_, err = Parse("XQ")
	c.Assert(err, NotNil)
	c.Assert(err, FitsTypeOf, &UnrecognizedCodeError{})
	c.Assert(err.(*UnrecognizedCodeError).Code, Equals, "XQ")
	c.Assert(err, ErrorMatches, `unrecognized ISO 3166 alpha country code: "XQ"`)
}

func (s *JurisdictionSuite) TestParseIsStrict(c *C) {
	for _, input := range []string{"no", "No", "nor", " NO", "NO ", "", "NORW"} {
		_, err := Parse(input)
		c.Assert(err, NotNil, Commentf("input %q", input))
	}
}

func (s *JurisdictionSuite) TestAntarctica(c *C) {
	j := FromAlpha3(ATA)
	c.Assert(j.CountryCode(), Equals, uint16(10))
	c.Assert(j.Region(), Equals, RegionUndefined)
	c.Assert(j.SubRegion(), Equals, SubRegionUndefined)
	c.Assert(j.Region().IsDefined(), Equals, false)
	c.Assert(j.RegionCode(), Equals, uint16(0))
}

func (s *JurisdictionSuite) TestRegionMembership(c *C) {
	europe := InRegion(RegionEurope)
	c.Assert(len(europe), Not(Equals), 0)

	found := false
	for _, j := range europe {
		c.Assert(j.Region(), Equals, RegionEurope)
		if j.Is(NO) {
			found = true
		}
	}
	c.Assert(found, Equals, true)

	// Antarctica is the only jurisdiction with no region assignment.
	undefined := InRegion(RegionUndefined)
	c.Assert(undefined, HasLen, 1)
	c.Assert(undefined[0].Is(AQ), Equals, true)
}

func (s *JurisdictionSuite) TestIntermediateRegionMembership(c *C) {
	channel := InIntermediateRegion(IntermediateRegionChannelIslands)
	c.Assert(channel, HasLen, 2)
	c.Assert(channel[0].Name(), Equals, "Guernsey")
	c.Assert(channel[1].Name(), Equals, "Jersey")

	code, ok := channel[0].IntermediateRegionCode()
	c.Assert(ok, Equals, true)
	c.Assert(code, Equals, uint16(830))
}

func (s *JurisdictionSuite) TestSubRegionMembership(c *C) {
	north := InSubRegion(SubRegionNorthernEurope)
	c.Assert(len(north), Not(Equals), 0)
	for _, j := range north {
		c.Assert(j.SubRegion(), Equals, SubRegionNorthernEurope)
		c.Assert(j.Region(), Equals, RegionEurope)
	}
}

func (s *JurisdictionSuite) TestAll(c *C) {
	all := All()
	c.Assert(all, HasLen, numDefinitions)

	seen := make(map[uint16]bool, len(all))
	for _, j := range all {
		c.Assert(seen[j.CountryCode()], Equals, false, Commentf("duplicate country code %d", j.CountryCode()))
		seen[j.CountryCode()] = true
	}
}

func (s *JurisdictionSuite) TestStringAndMarshal(c *C) {
	j := FromAlpha2(NO)
	c.Assert(j.String(), Equals, "NO")

	text, err := j.MarshalText()
	c.Assert(err, IsNil)
	c.Assert(string(text), Equals, "NO")

	var decoded Jurisdiction
	c.Assert(decoded.UnmarshalText([]byte("NOR")), IsNil)
	c.Assert(decoded.Equal(j), Equals, true)

	c.Assert(decoded.UnmarshalText([]byte("bogus")), NotNil)
}
