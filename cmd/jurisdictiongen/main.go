// Command jurisdictiongen compiles the jurisdiction classification
// dataset into Go source.
//
// Usage:
//
//	go run ./cmd/jurisdictiongen -config jurisdictiongen.yaml
//
// It reads the record feed (data/country-region.json by default),
// validates it, and emits alpha_tables.go, region_tables.go and
// definition_tables.go into the output directory. Any inconsistency in
// the dataset aborts generation; there is no partial output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config controls where the generator reads from and writes to.
type config struct {
	// Dataset is the path of the JSON record feed.
	Dataset string `yaml:"dataset"`
	// Output is the directory the generated files are written into.
	Output string `yaml:"output"`
	// Package is the package clause of the generated files.
	Package string `yaml:"package"`
}

func defaultConfig() config {
	return config{
		Dataset: "data/country-region.json",
		Output:  ".",
		Package: "jurisdiction",
	}
}

// loadConfig merges the YAML config file (when present) over the
// defaults. A missing file at the default path is not an error; a
// missing file named explicitly is.
func loadConfig(path string, explicit bool) (config, error) {
	cfg := defaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func main() {
	configPath := flag.String("config", "jurisdictiongen.yaml", "path to generator config file")
	dataset := flag.String("dataset", "", "override dataset path")
	output := flag.String("output", "", "override output directory")
	pkg := flag.String("package", "", "override generated package name")
	flag.Parse()

	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	cfg, err := loadConfig(*configPath, explicit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *dataset != "" {
		cfg.Dataset = *dataset
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *pkg != "" {
		cfg.Package = *pkg
	}

	fmt.Printf("Compiling jurisdiction tables from %s...\n", cfg.Dataset)

	records, err := loadRecords(cfg.Dataset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ds, err := compile(records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := emit(cfg, ds); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Compiled %d jurisdictions, %d regions, %d sub-regions, %d intermediate regions.\n",
		len(ds.records), len(ds.regions.names)-1, len(ds.subRegions.names)-1, len(ds.intermediateRegions.names)-1)
}
