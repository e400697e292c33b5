package bias

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"mpnnbias-core/residue"
	"mpnnbias-core/selection"
	"mpnnbias-core/structure"
)

func col(t *testing.T, one byte) int {
	t.Helper()
	i, ok := residue.Index(one)
	if !ok {
		t.Fatalf("no column for %q", one)
	}
	return i
}

func TestParseSpec(t *testing.T) {
	v, err := ParseSpec("AGYC:100.,WF:-20.5")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, c := range []byte("AGYC") {
		if v[col(t, c)] != 100 {
			t.Errorf("%c = %v, want 100", c, v[col(t, c)])
		}
	}
	for _, c := range []byte("WF") {
		if v[col(t, c)] != -20.5 {
			t.Errorf("%c = %v, want -20.5", c, v[col(t, c)])
		}
	}
	if v[col(t, 'K')] != 0 {
		t.Errorf("K should default to zero")
	}
}

func TestParseSpecLastGroupWins(t *testing.T) {
	v, err := ParseSpec("AA:1,A:2,-:1e1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v[col(t, 'A')] != 2 {
		t.Fatalf("A = %v, want 2", v[col(t, 'A')])
	}
	if v[col(t, '-')] != 10 {
		t.Fatalf("gap = %v, want 10", v[col(t, '-')])
	}
	if s := v.String(); s != "A:2,-:10" {
		t.Fatalf("String() = %q", s)
	}
}

func TestParseSpecErrors(t *testing.T) {
	for _, spec := range []string{"", "A", "A:", ":1", "A:x", "A:1,", "A:1:2", "Z:1", "a:1", "A:inf", "A:NaN"} {
		if _, err := ParseSpec(spec); err == nil {
			t.Errorf("ParseSpec(%q): expected error", spec)
		}
	}
	_, err := ParseSpec("AX:1")
	var ice *residue.InvalidCodeError
	if !errors.As(err, &ice) || ice.Code != "X" {
		t.Fatalf("want InvalidCodeError for X, got %v", err)
	}
}

func singleChain(t *testing.T, seq string) *structure.Structure {
	t.Helper()
	s := structure.New("t")
	if err := s.AddChain("A", []byte(seq)); err != nil {
		t.Fatal(err)
	}
	return s
}

func mask(bits ...bool) selection.Selection { return selection.Selection{"A": bits} }

func TestAssembleZeroNeverOverwrites(t *testing.T) {
	s := singleChain(t, "AGC")
	a, _ := ParseSpec("A:5")
	c, _ := ParseSpec("C:3")
	m := Assemble(s, []ResidueBias{
		{Selection: mask(true, false, false), Bias: a},
		{Selection: mask(true, false, false), Bias: c},
	})
	row := m["A"][0]
	if row[col(t, 'A')] != 5 || row[col(t, 'C')] != 3 {
		t.Fatalf("row 0 = %v", row)
	}
	for i := 1; i < 3; i++ {
		if m["A"][i] != (Row{}) {
			t.Fatalf("row %d should be zero: %v", i, m["A"][i])
		}
	}
}

func TestAssembleLastWriteWins(t *testing.T) {
	s := singleChain(t, "AG")
	first, _ := ParseSpec("A:5,G:1")
	second, _ := ParseSpec("A:-2")
	m := Assemble(s, []ResidueBias{
		{Selection: mask(true, true), Bias: first},
		{Selection: mask(false, true), Bias: second},
	})
	if got := m["A"][0][col(t, 'A')]; got != 5 {
		t.Fatalf("row 0 A = %v, want 5", got)
	}
	if got := m["A"][1][col(t, 'A')]; got != -2 {
		t.Fatalf("row 1 A = %v, want -2", got)
	}
	if got := m["A"][1][col(t, 'G')]; got != 1 {
		t.Fatalf("row 1 G = %v, want 1", got)
	}
}

func TestSetRoundTrip(t *testing.T) {
	s := singleChain(t, "AGC")
	v, _ := ParseSpec("AG:10.,W:0.1,Y:-3.3333333333333335")
	m := Assemble(s, []ResidueBias{{Selection: mask(true, true, false), Bias: v}})

	set := NewSet()
	if err := set.Add("t", m); err != nil {
		t.Fatal(err)
	}
	if err := set.Add("t", m); err == nil {
		t.Fatalf("expected duplicate name error")
	}
	raw, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := back["t"]["A"]
	if len(got) != 3 {
		t.Fatalf("want 3 rows, got %d", len(got))
	}
	for i := range got {
		if got[i] != m["A"][i] {
			t.Fatalf("row %d differs after round trip: %v vs %v", i, got[i], m["A"][i])
		}
	}
}
