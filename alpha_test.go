package jurisdiction

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseAlpha2(t *testing.T) {
	tests := []struct {
		input   string
		want    Alpha2
		wantErr bool
	}{
		{"NO", NO, false},
		{"US", US, false},
		{"AF", AF, false},
		{"no", 0, true}, // lowercase is rejected
		{"No", 0, true},
		{" NO", 0, true}, // no trimming
		{"NO ", 0, true},
		{"NOR", 0, true}, // alpha-3 is a different codec
		{"", 0, true},
		{"XQ", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAlpha2(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAlpha2(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAlpha2(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAlpha2(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAlpha3(t *testing.T) {
	tests := []struct {
		input   string
		want    Alpha3
		wantErr bool
	}{
		{"NOR", NOR, false},
		{"USA", USA, false},
		{"CHE", CHE, false},
		{"nor", 0, true},
		{"NO", 0, true},
		{" NOR", 0, true},
		{"", 0, true},
		{"XXX", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAlpha3(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAlpha3(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAlpha3(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAlpha3(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// Every compiled alpha value must survive a format/parse round trip.
func TestAlphaRoundTrip(t *testing.T) {
	for i := 0; i < numAlpha2; i++ {
		code := Alpha2(i)
		parsed, err := ParseAlpha2(code.String())
		if err != nil {
			t.Fatalf("ParseAlpha2(%q) error: %v", code.String(), err)
		}
		if parsed != code {
			t.Errorf("round trip of %v yielded %v", code, parsed)
		}
	}
	for i := 0; i < numAlpha3; i++ {
		code := Alpha3(i)
		parsed, err := ParseAlpha3(code.String())
		if err != nil {
			t.Fatalf("ParseAlpha3(%q) error: %v", code.String(), err)
		}
		if parsed != code {
			t.Errorf("round trip of %v yielded %v", code, parsed)
		}
	}
}

func TestAlphaOutOfRange(t *testing.T) {
	if got := Alpha2(255).String(); got != "Alpha2(255)" {
		t.Errorf("Alpha2(255).String() = %q", got)
	}
	if got := Alpha3(255).String(); got != "Alpha3(255)" {
		t.Errorf("Alpha3(255).String() = %q", got)
	}
	if _, err := Alpha2(255).MarshalText(); err == nil {
		t.Error("MarshalText on out of range Alpha2 should error")
	}
}

// A forged alpha value outside the compiled set must panic with a
// descriptive message, not a bare index error.
func TestFromAlphaOutOfRange(t *testing.T) {
	mustPanic := func(name, want string, f func()) {
		defer func() {
			r := recover()
			if r == nil {
				t.Errorf("%s did not panic", name)
				return
			}
			msg, ok := r.(string)
			if !ok || !strings.Contains(msg, want) {
				t.Errorf("%s panicked with %v, want mention of %q", name, r, want)
			}
		}()
		f()
	}

	mustPanic("FromAlpha2(250)", "Alpha2(250)", func() { FromAlpha2(Alpha2(250)) })
	mustPanic("FromAlpha3(250)", "Alpha3(250)", func() { FromAlpha3(Alpha3(250)) })
}

func TestAlphaJSON(t *testing.T) {
	type doc struct {
		Country Alpha2 `json:"country"`
		Code    Alpha3 `json:"code"`
	}

	raw, err := json.Marshal(doc{Country: NO, Code: NOR})
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"country":"NO","code":"NOR"}` {
		t.Errorf("unexpected JSON: %s", raw)
	}

	var back doc
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	if back.Country != NO || back.Code != NOR {
		t.Errorf("unmarshal yielded %+v", back)
	}

	if err := json.Unmarshal([]byte(`{"country":"zz"}`), &back); err == nil {
		t.Error("unmarshal of unknown code should error")
	}
}

func TestJurisdictionJSON(t *testing.T) {
	type doc struct {
		Where Jurisdiction `json:"where"`
	}

	raw, err := json.Marshal(doc{Where: FromAlpha2(NO)})
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"where":"NO"}` {
		t.Errorf("unexpected JSON: %s", raw)
	}

	var back doc
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Where.Equal(FromAlpha2(NO)) {
		t.Errorf("unmarshal yielded %v", back.Where)
	}
}
