package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// record is one raw entry of the record feed: the ISO 3166 country list
// joined with its UN M49 regional classification. All numeric fields
// arrive as (possibly zero-padded) decimal strings.
type record struct {
	Name                   string `json:"name"`
	Alpha2                 string `json:"alpha-2"`
	Alpha3                 string `json:"alpha-3"`
	CountryCode            string `json:"country-code"`
	Subdivision            string `json:"iso_3166-2"`
	Region                 string `json:"region"`
	SubRegion              string `json:"sub-region"`
	IntermediateRegion     string `json:"intermediate-region"`
	RegionCode             string `json:"region-code"`
	SubRegionCode          string `json:"sub-region-code"`
	IntermediateRegionCode string `json:"intermediate-region-code"`
}

// compiledRecord is a record with every scalar resolved: numeric codes
// parsed and hierarchy names replaced by their enumeration index
// (0 = Undefined at each level).
type compiledRecord struct {
	name        string
	alpha2      string
	alpha3      string
	subdivision string
	countryCode uint16

	region             int
	subRegion          int
	intermediateRegion int

	regionCode    uint16
	subRegionCode uint16
	// intermediateRegionCode is 0 when the feed carried the
	// "not applicable" sentinel.
	intermediateRegionCode uint16
}

// levelSet is the closed enumeration of one hierarchy level.
// names[0] is always the synthetic "Undefined" variant with code 0;
// real variants follow in feed first-seen order.
type levelSet struct {
	label string // "region", "sub-region", ...
	names []string
	codes []uint16
	index map[string]int
}

func newLevelSet(label string) *levelSet {
	return &levelSet{
		label: label,
		names: []string{"Undefined"},
		codes: []uint16{0},
		index: map[string]int{},
	}
}

// add interns a (name, code) pair, enforcing that every occurrence of a
// name carries the same numeric code and vice versa.
func (ls *levelSet) add(name string, code uint16) (int, error) {
	if name == "" {
		if code != 0 {
			return 0, fmt.Errorf("%s code %d given without a %s name", ls.label, code, ls.label)
		}
		return 0, nil
	}
	if idx, ok := ls.index[name]; ok {
		if ls.codes[idx] != code {
			return 0, fmt.Errorf("%s %q seen with conflicting codes %d and %d", ls.label, name, ls.codes[idx], code)
		}
		return idx, nil
	}
	for i, c := range ls.codes {
		if i > 0 && c == code {
			return 0, fmt.Errorf("%s code %d claimed by both %q and %q", ls.label, code, ls.names[i], name)
		}
	}
	ls.names = append(ls.names, name)
	ls.codes = append(ls.codes, code)
	ls.index[name] = len(ls.names) - 1
	return len(ls.names) - 1, nil
}

// dataset is the fully compiled feed: the definition list plus the
// three hierarchy enumerations.
type dataset struct {
	records             []compiledRecord
	regions             *levelSet
	subRegions          *levelSet
	intermediateRegions *levelSet
}

// members returns, for the given level accessor, the reverse index:
// one bucket of numeric country codes per enumeration variant, bucket
// contents in feed order.
func (ds *dataset) members(count int, level func(compiledRecord) int) [][]uint16 {
	out := make([][]uint16, count)
	for _, rec := range ds.records {
		idx := level(rec)
		out[idx] = append(out[idx], rec.countryCode)
	}
	return out
}

func loadRecords(path string) ([]record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	var records []record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}
	return records, nil
}

// parseCode parses a mandatory 3-digit numeric code in [1,999].
// Leading zeros are accepted ("004" parses as 4).
func parseCode(field, value string) (uint16, error) {
	n, err := strconv.ParseUint(value, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a numeric code: %w", field, value, err)
	}
	if n < 1 || n > 999 {
		return 0, fmt.Errorf("%s %d out of range [1,999]", field, n)
	}
	return uint16(n), nil
}

// parseOptionalCode parses a hierarchy numeric code where empty or "0"
// means "no assignment".
func parseOptionalCode(field, value string) (uint16, error) {
	if value == "" || value == "0" || value == "000" {
		return 0, nil
	}
	return parseCode(field, value)
}

func isAlpha(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// compile validates the full record feed and resolves it into a
// dataset. Any malformed or inconsistent record aborts compilation:
// there is no partial or degraded output.
func compile(records []record) (*dataset, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset is empty")
	}

	ds := &dataset{
		regions:             newLevelSet("region"),
		subRegions:          newLevelSet("sub-region"),
		intermediateRegions: newLevelSet("intermediate region"),
	}

	seenAlpha2 := make(map[string]bool, len(records))
	seenAlpha3 := make(map[string]bool, len(records))
	seenCountry := make(map[uint16]string, len(records))

	for i, rec := range records {
		crec, err := compileRecord(ds, rec)
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, rec.Name, err)
		}

		if seenAlpha2[crec.alpha2] {
			return nil, fmt.Errorf("record %d (%s): duplicate alpha-2 code %q", i, rec.Name, crec.alpha2)
		}
		if seenAlpha3[crec.alpha3] {
			return nil, fmt.Errorf("record %d (%s): duplicate alpha-3 code %q", i, rec.Name, crec.alpha3)
		}
		if prev, ok := seenCountry[crec.countryCode]; ok {
			return nil, fmt.Errorf("record %d (%s): country code %d already used by %s", i, rec.Name, crec.countryCode, prev)
		}
		seenAlpha2[crec.alpha2] = true
		seenAlpha3[crec.alpha3] = true
		seenCountry[crec.countryCode] = crec.name

		ds.records = append(ds.records, crec)
	}

	return ds, nil
}

func compileRecord(ds *dataset, rec record) (compiledRecord, error) {
	var zero compiledRecord

	if strings.TrimSpace(rec.Name) == "" {
		return zero, fmt.Errorf("missing name")
	}
	if !isAlpha(rec.Alpha2, 2) {
		return zero, fmt.Errorf("alpha-2 %q is not two uppercase ASCII letters", rec.Alpha2)
	}
	if !isAlpha(rec.Alpha3, 3) {
		return zero, fmt.Errorf("alpha-3 %q is not three uppercase ASCII letters", rec.Alpha3)
	}

	countryCode, err := parseCode("country-code", rec.CountryCode)
	if err != nil {
		return zero, err
	}

	// Hierarchy names and codes must agree on presence: a named level
	// requires a parseable code, an unnamed level requires the zero
	// sentinel. Unlike the coding fields there is no error path for an
	// unmatched name here; a fresh name simply becomes a new variant.
	regionCode, err := parseOptionalCode("region-code", rec.RegionCode)
	if err != nil {
		return zero, err
	}
	if rec.Region != "" && regionCode == 0 {
		return zero, fmt.Errorf("region %q has no region-code", rec.Region)
	}
	region, err := ds.regions.add(rec.Region, regionCode)
	if err != nil {
		return zero, err
	}

	subRegionCode, err := parseOptionalCode("sub-region-code", rec.SubRegionCode)
	if err != nil {
		return zero, err
	}
	if rec.SubRegion != "" && subRegionCode == 0 {
		return zero, fmt.Errorf("sub-region %q has no sub-region-code", rec.SubRegion)
	}
	subRegion, err := ds.subRegions.add(rec.SubRegion, subRegionCode)
	if err != nil {
		return zero, err
	}

	intermediateRegionCode, err := parseOptionalCode("intermediate-region-code", rec.IntermediateRegionCode)
	if err != nil {
		return zero, err
	}
	if rec.IntermediateRegion != "" && intermediateRegionCode == 0 {
		return zero, fmt.Errorf("intermediate region %q has no intermediate-region-code", rec.IntermediateRegion)
	}
	intermediateRegion, err := ds.intermediateRegions.add(rec.IntermediateRegion, intermediateRegionCode)
	if err != nil {
		return zero, err
	}

	return compiledRecord{
		name:                   rec.Name,
		alpha2:                 rec.Alpha2,
		alpha3:                 rec.Alpha3,
		subdivision:            rec.Subdivision,
		countryCode:            countryCode,
		region:                 region,
		subRegion:              subRegion,
		intermediateRegion:     intermediateRegion,
		regionCode:             regionCode,
		subRegionCode:          subRegionCode,
		intermediateRegionCode: intermediateRegionCode,
	}, nil
}

// identFor derives the Go identifier suffix for a hierarchy display
// name: non-alphanumeric runs are dropped and each word is capitalized,
// so "Sub-Saharan Africa" becomes "SubSaharanAfrica".
func identFor(name string) string {
	var b strings.Builder
	startWord := true
	for _, r := range name {
		isAlnum := r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
		if !isAlnum {
			startWord = true
			continue
		}
		if startWord && r >= 'a' && r <= 'z' {
			r = r - 'a' + 'A'
		}
		b.WriteRune(r)
		startWord = false
	}
	return b.String()
}
