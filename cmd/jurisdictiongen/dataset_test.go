package main

import (
	"strings"
	"testing"
)

func validRecord() record {
	return record{
		Name:          "Norway",
		Alpha2:        "NO",
		Alpha3:        "NOR",
		CountryCode:   "578",
		Subdivision:   "ISO 3166-2:NO",
		Region:        "Europe",
		SubRegion:     "Northern Europe",
		RegionCode:    "150",
		SubRegionCode: "154",
	}
}

func TestCompile(t *testing.T) {
	sweden := record{
		Name:          "Sweden",
		Alpha2:        "SE",
		Alpha3:        "SWE",
		CountryCode:   "752",
		Subdivision:   "ISO 3166-2:SE",
		Region:        "Europe",
		SubRegion:     "Northern Europe",
		RegionCode:    "150",
		SubRegionCode: "154",
	}
	jersey := record{
		Name:                   "Jersey",
		Alpha2:                 "JE",
		Alpha3:                 "JEY",
		CountryCode:            "832",
		Subdivision:            "ISO 3166-2:JE",
		Region:                 "Europe",
		SubRegion:              "Northern Europe",
		IntermediateRegion:     "Channel Islands",
		RegionCode:             "150",
		SubRegionCode:          "154",
		IntermediateRegionCode: "830",
	}

	ds, err := compile([]record{validRecord(), sweden, jersey})
	if err != nil {
		t.Fatal(err)
	}

	if len(ds.records) != 3 {
		t.Fatalf("compiled %d records, want 3", len(ds.records))
	}
	if got := ds.records[0]; got.countryCode != 578 || got.region != 1 || got.subRegion != 1 || got.intermediateRegion != 0 {
		t.Errorf("unexpected first record: %+v", got)
	}

	// All three share one region and sub-region variant; only Jersey
	// introduces an intermediate region.
	if len(ds.regions.names) != 2 || ds.regions.names[1] != "Europe" {
		t.Errorf("unexpected region names: %v", ds.regions.names)
	}
	if len(ds.subRegions.names) != 2 {
		t.Errorf("unexpected sub-region names: %v", ds.subRegions.names)
	}
	if len(ds.intermediateRegions.names) != 2 || ds.intermediateRegions.codes[1] != 830 {
		t.Errorf("unexpected intermediate regions: %v %v", ds.intermediateRegions.names, ds.intermediateRegions.codes)
	}

	members := ds.members(len(ds.intermediateRegions.names), func(r compiledRecord) int { return r.intermediateRegion })
	if len(members[0]) != 2 {
		t.Errorf("Undefined bucket = %v, want two members", members[0])
	}
	if len(members[1]) != 1 || members[1][0] != 832 {
		t.Errorf("Channel Islands bucket = %v, want [832]", members[1])
	}
}

func TestCompileRejects(t *testing.T) {
	mutate := func(f func(*record)) []record {
		r := validRecord()
		f(&r)
		return []record{r}
	}

	tests := []struct {
		name    string
		records []record
		wantErr string
	}{
		{"empty dataset", nil, "dataset is empty"},
		{"missing name", mutate(func(r *record) { r.Name = " " }), "missing name"},
		{"lowercase alpha-2", mutate(func(r *record) { r.Alpha2 = "no" }), "not two uppercase"},
		{"long alpha-2", mutate(func(r *record) { r.Alpha2 = "NOR" }), "not two uppercase"},
		{"short alpha-3", mutate(func(r *record) { r.Alpha3 = "NO" }), "not three uppercase"},
		{"non-numeric country code", mutate(func(r *record) { r.CountryCode = "57x" }), "not a numeric code"},
		{"zero country code", mutate(func(r *record) { r.CountryCode = "000" }), "out of range"},
		{"oversized country code", mutate(func(r *record) { r.CountryCode = "1000" }), "out of range"},
		{"region without code", mutate(func(r *record) { r.RegionCode = "" }), "has no region-code"},
		{"region code without name", mutate(func(r *record) { r.Region = ""; r.SubRegion = ""; r.SubRegionCode = "" }), "without a region name"},
		{
			"duplicate alpha-2",
			[]record{validRecord(), func() record {
				r := validRecord()
				r.Name = "Other"
				r.Alpha3 = "OTH"
				r.CountryCode = "579"
				return r
			}()},
			"duplicate alpha-2",
		},
		{
			"duplicate country code",
			[]record{validRecord(), func() record {
				r := validRecord()
				r.Name = "Other"
				r.Alpha2 = "OT"
				r.Alpha3 = "OTH"
				return r
			}()},
			"already used",
		},
		{
			"conflicting region code",
			[]record{validRecord(), func() record {
				r := validRecord()
				r.Name = "Other"
				r.Alpha2 = "OT"
				r.Alpha3 = "OTH"
				r.CountryCode = "579"
				r.RegionCode = "151"
				return r
			}()},
			"conflicting codes",
		},
		{
			"region code claimed twice",
			[]record{validRecord(), func() record {
				r := validRecord()
				r.Name = "Other"
				r.Alpha2 = "OT"
				r.Alpha3 = "OTH"
				r.CountryCode = "579"
				r.Region = "Neverland"
				return r
			}()},
			"claimed by both",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compile(tt.records)
			if err == nil {
				t.Fatal("compile succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseOptionalCode(t *testing.T) {
	for _, empty := range []string{"", "0", "000"} {
		n, err := parseOptionalCode("region-code", empty)
		if err != nil || n != 0 {
			t.Errorf("parseOptionalCode(%q) = %d, %v", empty, n, err)
		}
	}
	n, err := parseOptionalCode("region-code", "004")
	if err != nil || n != 4 {
		t.Errorf("parseOptionalCode(004) = %d, %v", n, err)
	}
}

func TestIdentFor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Europe", "Europe"},
		{"Undefined", "Undefined"},
		{"Northern Europe", "NorthernEurope"},
		{"Sub-Saharan Africa", "SubSaharanAfrica"},
		{"Latin America and the Caribbean", "LatinAmericaAndTheCaribbean"},
		{"Australia and New Zealand", "AustraliaAndNewZealand"},
		{"South-eastern Asia", "SouthEasternAsia"},
	}

	for _, tt := range tests {
		if got := identFor(tt.name); got != tt.want {
			t.Errorf("identFor(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
