package jurisdiction

import (
	"fmt"
	"strings"
	"sync"
)

// lookupTables holds every derived index over the compiled tables.
// Built exactly once, on first use, and read-only thereafter; all
// post-initialization reads are lock-free.
type lookupTables struct {
	byCountryCode map[uint16]*definition
	byName        map[string]*definition // lowercase english name

	alpha2Values map[string]Alpha2
	alpha3Values map[string]Alpha3

	regionValues             map[string]Region
	subRegionValues          map[string]SubRegion
	intermediateRegionValues map[string]IntermediateRegion
}

var (
	tablesOnce sync.Once
	tables     *lookupTables
)

// lookups returns the process-wide lookup tables, building them on
// first call. Safe under arbitrary concurrent first access: sync.Once
// guarantees exactly one construction, fully visible to all callers.
func lookups() *lookupTables {
	tablesOnce.Do(buildLookupTables)
	return tables
}

func buildLookupTables() {
	t := &lookupTables{
		byCountryCode:            make(map[uint16]*definition, numDefinitions),
		byName:                   make(map[string]*definition, numDefinitions),
		alpha2Values:             make(map[string]Alpha2, numAlpha2),
		alpha3Values:             make(map[string]Alpha3, numAlpha3),
		regionValues:             make(map[string]Region, numRegions),
		subRegionValues:          make(map[string]SubRegion, numSubRegions),
		intermediateRegionValues: make(map[string]IntermediateRegion, numIntermediateRegions),
	}

	for i := range definitionTable {
		def := &definitionTable[i]
		if _, dup := t.byCountryCode[def.countryCode]; dup {
			// The generator rejects duplicate country codes, so a
			// collision here means the compiled tables are corrupt.
			panic(fmt.Sprintf("jurisdiction: duplicate country code %d in compiled table", def.countryCode))
		}
		t.byCountryCode[def.countryCode] = def
		t.byName[strings.ToLower(def.name)] = def
	}

	for i, name := range alpha2Names {
		t.alpha2Values[name] = Alpha2(i)
	}
	for i, name := range alpha3Names {
		t.alpha3Values[name] = Alpha3(i)
	}
	for i, name := range regionNames {
		t.regionValues[name] = Region(i)
	}
	for i, name := range subRegionNames {
		t.subRegionValues[name] = SubRegion(i)
	}
	for i, name := range intermediateRegionNames {
		t.intermediateRegionValues[name] = IntermediateRegion(i)
	}

	tables = t
}

// resolve returns the definition for a compiled numeric country code.
// The only legal way to obtain a country code at runtime is through the
// closed enumerations emitted by the generator, so a miss indicates a
// defect in the compiled tables rather than a recoverable condition.
func resolve(countryCode uint16) *definition {
	def, ok := lookups().byCountryCode[countryCode]
	if !ok {
		panic(fmt.Sprintf("jurisdiction: country code %d missing from compiled table", countryCode))
	}
	return def
}
