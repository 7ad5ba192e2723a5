package jurisdiction

import "fmt"

// UnrecognizedCodeError reports that a string matched neither a known
// alpha-2 nor a known alpha-3 country code. The offending input is kept
// verbatim for diagnostics.
type UnrecognizedCodeError struct {
	Code string
}

func (e *UnrecognizedCodeError) Error() string {
	return fmt.Sprintf("unrecognized ISO 3166 alpha country code: %q", e.Code)
}
