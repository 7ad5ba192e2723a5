package jurisdiction

import "fmt"

// Alpha2 is a two letter ISO 3166-1 country code classification.
//
// The set of values is closed: one constant exists per code in the
// compiled dataset (see alpha_tables.go) and there is no "unknown"
// variant. The zero value is the first code in the dataset, not a
// sentinel.
type Alpha2 uint8

// Alpha3 is a three letter ISO 3166-1 country code classification.
//
// Like Alpha2, the set of values is closed and exhaustive.
type Alpha3 uint8

// String returns the canonical two letter code, e.g. "NO".
func (a Alpha2) String() string {
	if int(a) >= numAlpha2 {
		return fmt.Sprintf("Alpha2(%d)", uint8(a))
	}
	return alpha2Names[a]
}

// String returns the canonical three letter code, e.g. "NOR".
func (a Alpha3) String() string {
	if int(a) >= numAlpha3 {
		return fmt.Sprintf("Alpha3(%d)", uint8(a))
	}
	return alpha3Names[a]
}

// MarshalText implements encoding.TextMarshaler.
func (a Alpha2) MarshalText() ([]byte, error) {
	if int(a) >= numAlpha2 {
		return nil, fmt.Errorf("invalid Alpha2 value %d", uint8(a))
	}
	return []byte(alpha2Names[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alpha2) UnmarshalText(text []byte) error {
	v, err := ParseAlpha2(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (a Alpha3) MarshalText() ([]byte, error) {
	if int(a) >= numAlpha3 {
		return nil, fmt.Errorf("invalid Alpha3 value %d", uint8(a))
	}
	return []byte(alpha3Names[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alpha3) UnmarshalText(text []byte) error {
	v, err := ParseAlpha3(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParseAlpha2 parses the canonical uppercase two letter form of an
// alpha-2 code. Matching is exact: no case folding, trimming, or other
// normalization is performed. An unrecognized string yields an
// *UnrecognizedCodeError.
func ParseAlpha2(s string) (Alpha2, error) {
	if v, ok := lookups().alpha2Values[s]; ok {
		return v, nil
	}
	return 0, &UnrecognizedCodeError{Code: s}
}

// ParseAlpha3 parses the canonical uppercase three letter form of an
// alpha-3 code. Matching is exact, as for ParseAlpha2.
func ParseAlpha3(s string) (Alpha3, error) {
	if v, ok := lookups().alpha3Values[s]; ok {
		return v, nil
	}
	return 0, &UnrecognizedCodeError{Code: s}
}
