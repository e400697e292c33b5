// core/selection/name.go
package selection

import (
	"strings"

	"mpnnbias-core/residue"
	"mpnnbias-core/structure"
)

// Name selects residues by residue type ("name" clause).
type Name struct {
	Text   string
	Invert bool
	Codes  map[byte]bool
}

// ParseName parses "[!]CODE,CODE,..." with 1- or 3-letter residue codes.
func ParseName(text string) (*Name, error) {
	n := &Name{Text: text, Codes: map[byte]bool{}}
	body := text
	if strings.HasPrefix(body, "!") {
		n.Invert = true
		body = body[1:]
	}
	for _, code := range strings.Split(body, ",") {
		one, err := residue.ToOneLetter(code)
		if err != nil {
			return nil, &ParseError{Text: text, Token: code, Reason: "bad residue name", Err: err}
		}
		n.Codes[one] = true
	}
	return n, nil
}

func (n *Name) Evaluate(s *structure.Structure) (Selection, error) {
	sel := Empty(s)
	for _, c := range s.Chains() {
		seq, _ := s.Sequence(c)
		mask := sel[c]
		for i, res := range seq {
			mask[i] = n.Codes[res]
		}
		if n.Invert {
			invert(mask)
		}
	}
	return sel, nil
}
