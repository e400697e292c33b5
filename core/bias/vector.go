// core/bias/vector.go
package bias

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"mpnnbias-core/residue"
	"mpnnbias-core/selection"
)

// Vector holds one bias per alphabet symbol, in residue.Letters order.
type Vector [residue.Count]float64

// ResidueBias is one compiled command: which residues, and which biases.
type ResidueBias struct {
	Selection selection.Selection
	Bias      Vector
}

// ParseSpec parses "CODES:VALUE[,CODES:VALUE...]", e.g. "AGYC:100.,WF:-20.5".
// Each 1-letter code is set independently; a later group wins for a symbol
// repeated across groups.
func ParseSpec(spec string) (Vector, error) {
	var v Vector
	if spec == "" {
		return v, errors.New("empty bias specification")
	}
	for _, group := range strings.Split(spec, ",") {
		codes, value, ok := strings.Cut(group, ":")
		if !ok {
			return v, fmt.Errorf("bias %q: want residue codes followed by \":\" and a value", group)
		}
		if codes == "" {
			return v, fmt.Errorf("bias %q: no residue codes", group)
		}
		b, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return v, fmt.Errorf("bias %q: value %q is not a number", group, value)
		}
		if math.IsInf(b, 0) || math.IsNaN(b) {
			return v, fmt.Errorf("bias %q: value must be finite", group)
		}
		for i := 0; i < len(codes); i++ {
			one, err := residue.ToOneLetter(codes[i : i+1])
			if err != nil {
				return v, fmt.Errorf("bias %q: %w", group, err)
			}
			col, _ := residue.Index(one)
			v[col] = b
		}
	}
	return v, nil
}

// String renders the non-zero entries as a bias spec, one group per symbol.
func (v Vector) String() string {
	var parts []string
	for i, b := range v {
		if b != 0 {
			parts = append(parts, fmt.Sprintf("%c:%g", residue.Letters[i], b))
		}
	}
	return strings.Join(parts, ",")
}
