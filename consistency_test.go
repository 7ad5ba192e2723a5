package jurisdiction

import (
	"sync"
	"testing"
)

// The compiled tables must be mutually consistent: every handle round
// trips through both alpha codecs, and the hierarchy enumerations agree
// with the raw numeric codes stored per definition.
func TestCompiledTableConsistency(t *testing.T) {
	for _, j := range All() {
		if j.Name() == "" {
			t.Errorf("%v has an empty name", j)
		}

		if got := FromAlpha2(j.Alpha2()); !got.Equal(j) {
			t.Errorf("FromAlpha2(%v) = %v, want %v", j.Alpha2(), got, j)
		}
		if got := FromAlpha3(j.Alpha3()); !got.Equal(j) {
			t.Errorf("FromAlpha3(%v) = %v, want %v", j.Alpha3(), got, j)
		}

		if parsed, err := Parse(j.Alpha2().String()); err != nil || !parsed.Equal(j) {
			t.Errorf("Parse(%q) = %v, %v", j.Alpha2().String(), parsed, err)
		}
		if parsed, err := Parse(j.Alpha3().String()); err != nil || !parsed.Equal(j) {
			t.Errorf("Parse(%q) = %v, %v", j.Alpha3().String(), parsed, err)
		}

		// A level's name and numeric code always agree on presence.
		if j.Region().IsDefined() != (j.RegionCode() != 0) {
			t.Errorf("%v: region %v disagrees with code %d on presence", j, j.Region(), j.RegionCode())
		}
		if j.Region().Code() != j.RegionCode() {
			t.Errorf("%v: region code mismatch, %d vs %d", j, j.Region().Code(), j.RegionCode())
		}
		if j.SubRegion().IsDefined() != (j.SubRegionCode() != 0) {
			t.Errorf("%v: sub-region %v disagrees with code %d on presence", j, j.SubRegion(), j.SubRegionCode())
		}
		if j.SubRegion().Code() != j.SubRegionCode() {
			t.Errorf("%v: sub-region code mismatch, %d vs %d", j, j.SubRegion().Code(), j.SubRegionCode())
		}

		code, ok := j.IntermediateRegionCode()
		if ok != j.IntermediateRegion().IsDefined() {
			t.Errorf("%v: intermediate region %v disagrees with ok=%v", j, j.IntermediateRegion(), ok)
		}
		if ok && code != j.IntermediateRegion().Code() {
			t.Errorf("%v: intermediate region code mismatch, %d vs %d", j, code, j.IntermediateRegion().Code())
		}

		// A defined sub-region implies a defined region; an intermediate
		// region implies both outer levels.
		if j.SubRegion().IsDefined() && !j.Region().IsDefined() {
			t.Errorf("%v has a sub-region but no region", j)
		}
		if j.IntermediateRegion().IsDefined() && !j.SubRegion().IsDefined() {
			t.Errorf("%v has an intermediate region but no sub-region", j)
		}
	}
}

// Every reverse index bucket must contain exactly the jurisdictions
// that classify to its value, with buckets partitioning the full set.
func TestReverseIndexConsistency(t *testing.T) {
	total := 0
	for r := Region(0); int(r) < numRegions; r++ {
		members := r.Jurisdictions()
		total += len(members)
		for _, j := range members {
			if j.Region() != r {
				t.Errorf("%v listed under %v but classifies to %v", j, r, j.Region())
			}
		}
	}
	if total != numDefinitions {
		t.Errorf("region buckets hold %d jurisdictions, want %d", total, numDefinitions)
	}

	total = 0
	for sr := SubRegion(0); int(sr) < numSubRegions; sr++ {
		members := sr.Jurisdictions()
		total += len(members)
		for _, j := range members {
			if j.SubRegion() != sr {
				t.Errorf("%v listed under %v but classifies to %v", j, sr, j.SubRegion())
			}
		}
	}
	if total != numDefinitions {
		t.Errorf("sub-region buckets hold %d jurisdictions, want %d", total, numDefinitions)
	}

	total = 0
	for ir := IntermediateRegion(0); int(ir) < numIntermediateRegions; ir++ {
		members := ir.Jurisdictions()
		total += len(members)
		for _, j := range members {
			if j.IntermediateRegion() != ir {
				t.Errorf("%v listed under %v but classifies to %v", j, ir, j.IntermediateRegion())
			}
		}
	}
	if total != numDefinitions {
		t.Errorf("intermediate region buckets hold %d jurisdictions, want %d", total, numDefinitions)
	}
}

// Every parseable region name round trips through its String form.
func TestHierarchyNameRoundTrip(t *testing.T) {
	for r := Region(1); int(r) < numRegions; r++ {
		parsed, err := ParseRegion(r.String())
		if err != nil || parsed != r {
			t.Errorf("ParseRegion(%q) = %v, %v", r.String(), parsed, err)
		}
	}
	for sr := SubRegion(1); int(sr) < numSubRegions; sr++ {
		parsed, err := ParseSubRegion(sr.String())
		if err != nil || parsed != sr {
			t.Errorf("ParseSubRegion(%q) = %v, %v", sr.String(), parsed, err)
		}
	}
	for ir := IntermediateRegion(1); int(ir) < numIntermediateRegions; ir++ {
		parsed, err := ParseIntermediateRegion(ir.String())
		if err != nil || parsed != ir {
			t.Errorf("ParseIntermediateRegion(%q) = %v, %v", ir.String(), parsed, err)
		}
	}
}

// Concurrent first access must observe fully built lookup tables.
func TestConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			j, err := Parse("NO")
			if err != nil {
				t.Errorf("Parse(NO) error: %v", err)
				return
			}
			if j.CountryCode() != 578 {
				t.Errorf("Parse(NO).CountryCode() = %d", j.CountryCode())
			}
			if !FromAlpha3(SWE).Is(SE) {
				t.Error("FromAlpha3(SWE) is not SE")
			}
			if len(InRegion(RegionOceania)) == 0 {
				t.Error("Oceania has no members")
			}
		}()
	}
	wg.Wait()
}
