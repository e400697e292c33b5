// core/residue/residue.go
package residue

import "fmt"

// Letters is the canonical column order of every bias row (gap last).
const Letters = "ACDEFGHIKLMNPQRSTVWY-"

// Count is the number of symbols in the alphabet.
const Count = len(Letters)

// Gap is the 1-letter gap symbol.
const Gap byte = '-'

var threeLetter = [Count]string{
	"ALA", "CYS", "ASP", "GLU", "PHE", "GLY", "HIS", "ILE", "LYS", "LEU",
	"MET", "ASN", "PRO", "GLN", "ARG", "SER", "THR", "VAL", "TRP", "TYR",
	"GAP",
}

var (
	oneToIndex = map[byte]int{}
	threeToOne = map[string]byte{}
)

func init() {
	for i := 0; i < Count; i++ {
		oneToIndex[Letters[i]] = i
		threeToOne[threeLetter[i]] = Letters[i]
	}
}

// InvalidCodeError reports a residue code outside the 21-symbol alphabet.
type InvalidCodeError struct {
	Code   string
	Reason string
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid residue code %q: %s", e.Code, e.Reason)
}

// ToOneLetter converts a 1- or 3-letter code to its 1-letter code.
// 3-letter codes are matched case-sensitively (uppercase).
func ToOneLetter(code string) (byte, error) {
	switch len(code) {
	case 1:
		if _, ok := oneToIndex[code[0]]; !ok {
			return 0, &InvalidCodeError{Code: code, Reason: "not a 1 letter residue code"}
		}
		return code[0], nil
	case 3:
		one, ok := threeToOne[code]
		if !ok {
			return 0, &InvalidCodeError{Code: code, Reason: "not a 3 letter residue name"}
		}
		return one, nil
	default:
		return 0, &InvalidCodeError{Code: code, Reason: "must be a 1 or 3 letter amino acid code"}
	}
}

// Index returns the bias column of a 1-letter code.
func Index(one byte) (int, bool) {
	i, ok := oneToIndex[one]
	return i, ok
}

// ThreeLetter returns the 3-letter name of a 1-letter code.
func ThreeLetter(one byte) (string, bool) {
	i, ok := oneToIndex[one]
	if !ok {
		return "", false
	}
	return threeLetter[i], true
}
