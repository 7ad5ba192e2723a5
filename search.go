package jurisdiction

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxNameDistance caps the fuzzy edit distance to prevent expensive
// scans that match half the table with high distances.
const maxNameDistance = 3

// maxQueryLen limits query length to prevent algorithmic complexity
// attacks on the Levenshtein distance calculation. 256 runes covers the
// longest official country names with plenty of headroom.
const maxQueryLen = 256

// LookupName returns the jurisdiction whose english name matches
// exactly, ignoring case and surrounding whitespace.
func LookupName(name string) (Jurisdiction, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Jurisdiction{}, false
	}
	if def, ok := lookups().byName[key]; ok {
		return Jurisdiction{def: def}, true
	}
	return Jurisdiction{}, false
}

// SearchName finds the jurisdiction whose english name best matches the
// query, tolerating partial input and typos. An exact case-insensitive
// match always wins; otherwise candidates are scored by prefix match,
// substring match, and Levenshtein distance up to maxDist (capped at 3,
// 0 disables fuzzy matching). Score ties break to the lower numeric
// country code for determinism. ok is false when nothing scores.
func SearchName(query string, maxDist int) (Jurisdiction, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Jurisdiction{}, false
	}
	if runes := []rune(q); len(runes) > maxQueryLen {
		q = string(runes[:maxQueryLen])
	}
	if maxDist > maxNameDistance {
		maxDist = maxNameDistance
	}

	if def, ok := lookups().byName[q]; ok {
		return Jurisdiction{def: def}, true
	}

	var (
		best    *definition
		bestScr int
	)
	for i := range definitionTable {
		def := &definitionTable[i]
		name := strings.ToLower(def.name)

		scr := 0
		switch {
		case strings.HasPrefix(name, q):
			scr = 6
		case strings.Contains(name, q):
			scr = 4
		}

		// Fuzzy matching on 1-2 character input drowns in false
		// positives; require at least 3.
		if maxDist > 0 && len(q) > 2 {
			if d := levenshtein.ComputeDistance(q, name); d <= maxDist {
				if s := 8 - d; s > scr {
					scr = s
				}
			}
		}

		if scr == 0 {
			continue
		}
		if best == nil || scr > bestScr || (scr == bestScr && def.countryCode < best.countryCode) {
			best = def
			bestScr = scr
		}
	}

	if best == nil {
		return Jurisdiction{}, false
	}
	return Jurisdiction{def: best}, true
}
