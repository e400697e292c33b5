// core/bias/matrix.go
package bias

import (
	"encoding/json"
	"fmt"
	"io"

	"mpnnbias-core/residue"
	"mpnnbias-core/structure"
)

// Row is the bias of every alphabet symbol at one residue.
type Row = [residue.Count]float64

// Matrices maps chain id to a [residues][21] bias matrix.
type Matrices map[string][]Row

// Assemble folds biases onto zero matrices in order. Only non-zero bias
// values overwrite an entry, so later commands never reset earlier biases
// to zero; two non-zero writes to one entry resolve last-write-wins.
func Assemble(s *structure.Structure, biases []ResidueBias) Matrices {
	out := make(Matrices, len(s.Chains()))
	for _, c := range s.Chains() {
		out[c] = make([]Row, s.Len(c))
	}
	for _, rb := range biases {
		for c, mask := range rb.Selection {
			rows, ok := out[c]
			if !ok {
				continue
			}
			for i, on := range mask {
				if !on || i >= len(rows) {
					continue
				}
				for col, b := range rb.Bias {
					if b != 0 {
						rows[i][col] = b
					}
				}
			}
		}
	}
	return out
}

// Set collects matrices for several structures, keyed by structure name.
type Set struct {
	names  []string
	byName map[string]Matrices
}

func NewSet() *Set { return &Set{byName: map[string]Matrices{}} }

// Add registers m under name; a name may only be added once.
func (s *Set) Add(name string, m Matrices) error {
	if _, dup := s.byName[name]; dup {
		return fmt.Errorf("duplicate structure name %q", name)
	}
	s.names = append(s.names, name)
	s.byName[name] = m
	return nil
}

// Names lists structure names in the order they were added.
func (s *Set) Names() []string { return append([]string(nil), s.names...) }

// Get returns the matrices of one structure.
func (s *Set) Get(name string) (Matrices, bool) {
	m, ok := s.byName[name]
	return m, ok
}

// MarshalJSON writes {name: {chain: [[21 floats]...]}}.
func (s *Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.byName)
}

// Decode reads a bias JSON document back into per-structure matrices.
func Decode(r io.Reader) (map[string]Matrices, error) {
	var out map[string]Matrices
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode bias json: %w", err)
	}
	return out, nil
}
