// core/selection/selection.go
package selection

import (
	"fmt"

	"mpnnbias-core/structure"
)

// Selection maps a chain id to one "selected" flag per residue.
type Selection map[string][]bool

// Selector evaluates one clause against a structure. Implementations never
// modify the structure and always return a freshly allocated Selection.
type Selector interface {
	Evaluate(s *structure.Structure) (Selection, error)
}

// ParseError reports malformed selector text.
type ParseError struct {
	Text   string // whole selector text
	Token  string // offending token, if any
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := e.Reason
	if e.Token != "" {
		msg = fmt.Sprintf("%s (token %q)", msg, e.Token)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return fmt.Sprintf("selection %q: %s", e.Text, msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Selector kinds as written in a command.
const (
	KindIndex = "idx"
	KindName  = "name"
)

// Kinds lists the recognised selector kinds.
var Kinds = []string{KindIndex, KindName}

// Parse builds the selector for kind from its text.
func Parse(kind, text string) (Selector, error) {
	switch kind {
	case KindIndex:
		return ParseIndex(text)
	case KindName:
		return ParseName(text)
	default:
		return nil, fmt.Errorf("unknown selector kind %q", kind)
	}
}

// Empty returns an all-false selection covering every chain of s.
func Empty(s *structure.Structure) Selection {
	out := make(Selection, len(s.Chains()))
	for _, c := range s.Chains() {
		out[c] = make([]bool, s.Len(c))
	}
	return out
}

// And returns the per-residue conjunction of a and b.
func And(a, b Selection) Selection {
	return combine(a, b, func(x, y bool) bool { return x && y })
}

// Or returns the per-residue disjunction of a and b.
func Or(a, b Selection) Selection {
	return combine(a, b, func(x, y bool) bool { return x || y })
}

// combine walks the chains of a; a chain missing from b reads as all false.
func combine(a, b Selection, op func(x, y bool) bool) Selection {
	out := make(Selection, len(a))
	for c, left := range a {
		right := b[c]
		mask := make([]bool, len(left))
		for i := range left {
			r := i < len(right) && right[i]
			mask[i] = op(left[i], r)
		}
		out[c] = mask
	}
	return out
}

// Count returns the number of selected residues in chain c.
func (sel Selection) Count(c string) int {
	n := 0
	for _, v := range sel[c] {
		if v {
			n++
		}
	}
	return n
}

func invert(mask []bool) {
	for i := range mask {
		mask[i] = !mask[i]
	}
}
