// core/selection/index.go
package selection

import (
	"strconv"
	"strings"

	"mpnnbias-core/structure"
)

// Range is a 0-based half-open residue interval, optionally bound to a chain.
type Range struct {
	Chain      string // "" means every chain
	Start, End int
}

// Index selects residues by 1-based inclusive positions ("idx" clause).
type Index struct {
	Text   string
	Invert bool
	Ranges []Range
}

// ParseIndex parses "[!]tok,tok,..." where tok is [CHAIN]N or [CHAIN]N-M.
func ParseIndex(text string) (*Index, error) {
	ix := &Index{Text: text}
	body := text
	if strings.HasPrefix(body, "!") {
		ix.Invert = true
		body = body[1:]
	}
	if body == "" {
		return nil, &ParseError{Text: text, Reason: "empty index selection"}
	}
	for _, tok := range strings.Split(body, ",") {
		r, err := parseRange(tok)
		if err != nil {
			err.Text = text
			return nil, err
		}
		ix.Ranges = append(ix.Ranges, r)
	}
	return ix, nil
}

func parseRange(tok string) (Range, *ParseError) {
	var r Range
	s := tok
	if s == "" {
		return r, &ParseError{Token: tok, Reason: "empty index token"}
	}
	if s[0] >= 'A' && s[0] <= 'Z' {
		r.Chain = s[:1]
		s = s[1:]
	}
	lo, hi, isRange := strings.Cut(s, "-")
	start, ok := parsePosition(lo)
	if !ok {
		return r, &ParseError{Token: tok, Reason: "expected an integer index or start-end range"}
	}
	end := start
	if isRange {
		if end, ok = parsePosition(hi); !ok {
			return r, &ParseError{Token: tok, Reason: "expected an integer index or start-end range"}
		}
		if start > end {
			return r, &ParseError{Token: tok, Reason: "range start is greater than its end"}
		}
	}
	r.Start, r.End = start-1, end
	return r, nil
}

// parsePosition accepts a plain decimal index >= 1.
func parsePosition(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Evaluate marks every range, clamped to chain length, then flips each
// touched chain when inverted.
func (ix *Index) Evaluate(s *structure.Structure) (Selection, error) {
	sel := Empty(s)
	touched := map[string]bool{}
	for _, r := range ix.Ranges {
		chains := s.Chains()
		if r.Chain != "" {
			if !s.Has(r.Chain) {
				return nil, &ParseError{Text: ix.Text, Token: r.Chain, Reason: "chain not in structure " + s.Name}
			}
			chains = []string{r.Chain}
		}
		for _, c := range chains {
			mask := sel[c]
			start, end := clamp(r.Start, len(mask)), clamp(r.End, len(mask))
			for i := start; i < end; i++ {
				mask[i] = true
			}
			touched[c] = true
		}
	}
	if ix.Invert {
		for c := range touched {
			invert(sel[c])
		}
	}
	return sel, nil
}

func clamp(i, n int) int {
	if i > n {
		return n
	}
	return i
}
