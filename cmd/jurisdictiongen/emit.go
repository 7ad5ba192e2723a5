package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"
)

func header(cfg config) string {
	return fmt.Sprintf("// Code generated by jurisdictiongen. DO NOT EDIT.\n// Source: %s\n\npackage %s\n\n", cfg.Dataset, cfg.Package)
}

// chunkLines renders items as indented source lines, wrapped at per
// items per line, each line ending in a comma.
func chunkLines(items []string, per int) string {
	var lines []string
	for len(items) > 0 {
		n := per
		if n > len(items) {
			n = len(items)
		}
		lines = append(lines, "\t"+strings.Join(items[:n], ", ")+",")
		items = items[n:]
	}
	return strings.Join(lines, "\n")
}

func quoted(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strconv.Quote(s)
	}
	return out
}

func decimals(items []uint16) []string {
	out := make([]string, len(items))
	for i, n := range items {
		out[i] = strconv.Itoa(int(n))
	}
	return out
}

func emitAlpha(cfg config, ds *dataset) []byte {
	var b bytes.Buffer
	b.WriteString(header(cfg))

	b.WriteString("// ISO 3166-1 alpha-2 codes, one constant per jurisdiction in dataset order.\nconst (\n")
	for i, rec := range ds.records {
		if i == 0 {
			fmt.Fprintf(&b, "\t%s Alpha2 = iota\n", rec.alpha2)
		} else {
			fmt.Fprintf(&b, "\t%s\n", rec.alpha2)
		}
	}
	b.WriteString(")\n\n")

	b.WriteString("// ISO 3166-1 alpha-3 codes, one constant per jurisdiction in dataset order.\nconst (\n")
	for i, rec := range ds.records {
		if i == 0 {
			fmt.Fprintf(&b, "\t%s Alpha3 = iota\n", rec.alpha3)
		} else {
			fmt.Fprintf(&b, "\t%s\n", rec.alpha3)
		}
	}
	b.WriteString(")\n\n")

	fmt.Fprintf(&b, "const numAlpha2 = %d\n\nconst numAlpha3 = %d\n\n", len(ds.records), len(ds.records))

	a2 := make([]string, len(ds.records))
	a3 := make([]string, len(ds.records))
	ccs := make([]uint16, len(ds.records))
	for i, rec := range ds.records {
		a2[i] = rec.alpha2
		a3[i] = rec.alpha3
		ccs[i] = rec.countryCode
	}

	fmt.Fprintf(&b, "var alpha2Names = [numAlpha2]string{\n%s\n}\n\n", chunkLines(quoted(a2), 10))
	fmt.Fprintf(&b, "var alpha3Names = [numAlpha3]string{\n%s\n}\n\n", chunkLines(quoted(a3), 10))
	b.WriteString("// alpha2Countries maps each Alpha2 value to its ISO 3166-1 numeric country code.\n")
	fmt.Fprintf(&b, "var alpha2Countries = [numAlpha2]uint16{\n%s\n}\n\n", chunkLines(decimals(ccs), 16))
	b.WriteString("// alpha3Countries maps each Alpha3 value to its ISO 3166-1 numeric country code.\n")
	fmt.Fprintf(&b, "var alpha3Countries = [numAlpha3]uint16{\n%s\n}\n", chunkLines(decimals(ccs), 16))

	return b.Bytes()
}

func emitLevel(b *bytes.Buffer, typeName, varPrefix string, ls *levelSet, members [][]uint16) {
	fmt.Fprintf(b, "// %s values observed in the dataset. %sUndefined is the zero value.\nconst (\n", typeName, typeName)
	fmt.Fprintf(b, "\t%sUndefined %s = iota\n", typeName, typeName)
	for _, name := range ls.names[1:] {
		fmt.Fprintf(b, "\t%s%s\n", typeName, identFor(name))
	}
	b.WriteString(")\n\n")

	countName := fmt.Sprintf("num%ss", typeName)
	fmt.Fprintf(b, "const %s = %d\n\n", countName, len(ls.names))

	fmt.Fprintf(b, "var %sNames = [%s]string{\n%s\n}\n\n", varPrefix, countName, chunkLines(quoted(ls.names), 4))

	fmt.Fprintf(b, "// %sCodes holds the UN M49 numeric code for each %s value.\n", varPrefix, typeName)
	fmt.Fprintf(b, "var %sCodes = [%s]uint16{\n%s\n}\n\n", varPrefix, countName, chunkLines(decimals(ls.codes), 16))

	fmt.Fprintf(b, "// %sMembers lists the numeric country codes of every jurisdiction\n// classified under each %s value, in dataset order.\n", varPrefix, typeName)
	fmt.Fprintf(b, "var %sMembers = [%s][]uint16{\n", varPrefix, countName)
	for _, bucket := range members {
		fmt.Fprintf(b, "\t{%s},\n", strings.Join(decimals(bucket), ", "))
	}
	b.WriteString("}\n")
}

func emitRegion(cfg config, ds *dataset) []byte {
	var b bytes.Buffer
	b.WriteString(header(cfg))

	emitLevel(&b, "Region", "region", ds.regions,
		ds.members(len(ds.regions.names), func(r compiledRecord) int { return r.region }))
	b.WriteString("\n")
	emitLevel(&b, "SubRegion", "subRegion", ds.subRegions,
		ds.members(len(ds.subRegions.names), func(r compiledRecord) int { return r.subRegion }))
	b.WriteString("\n")
	emitLevel(&b, "IntermediateRegion", "intermediateRegion", ds.intermediateRegions,
		ds.members(len(ds.intermediateRegions.names), func(r compiledRecord) int { return r.intermediateRegion }))

	return b.Bytes()
}

func emitDefinitions(cfg config, ds *dataset) []byte {
	var b bytes.Buffer
	b.WriteString(header(cfg))

	fmt.Fprintf(&b, "const numDefinitions = %d\n\n", len(ds.records))
	b.WriteString("// definitionTable holds one compiled record per jurisdiction, in dataset order.\n")
	b.WriteString("// Field order: countryCode, name, alpha2, alpha3, subdivision, region,\n")
	b.WriteString("// subRegion, intermediateRegion, regionCode, subRegionCode, intermediateRegionCode.\n")
	b.WriteString("var definitionTable = [numDefinitions]definition{\n")
	for _, rec := range ds.records {
		fmt.Fprintf(&b, "\t{%d, %s, %s, %s, %s, Region%s, SubRegion%s, IntermediateRegion%s, %d, %d, %d},\n",
			rec.countryCode,
			strconv.Quote(rec.name),
			rec.alpha2,
			rec.alpha3,
			strconv.Quote(rec.subdivision),
			identFor(ds.regions.names[rec.region]),
			identFor(ds.subRegions.names[rec.subRegion]),
			identFor(ds.intermediateRegions.names[rec.intermediateRegion]),
			rec.regionCode,
			rec.subRegionCode,
			rec.intermediateRegionCode)
	}
	b.WriteString("}\n")

	return b.Bytes()
}

// emit writes the three generated files. Each is formatted through the
// standard import-aware formatter before being written, so the output
// is always gofmt-clean.
func emit(cfg config, ds *dataset) error {
	files := []struct {
		name string
		src  []byte
	}{
		{"alpha_tables.go", emitAlpha(cfg, ds)},
		{"region_tables.go", emitRegion(cfg, ds)},
		{"definition_tables.go", emitDefinitions(cfg, ds)},
	}

	for _, f := range files {
		path := filepath.Join(cfg.Output, f.name)
		formatted, err := imports.Process(path, f.src, nil)
		if err != nil {
			return fmt.Errorf("formatting %s: %w", f.name, err)
		}
		if err := os.WriteFile(path, formatted, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", f.name, err)
		}
		fmt.Printf("  wrote %s\n", path)
	}
	return nil
}
