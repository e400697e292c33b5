// core/structure/structure.go
package structure

import (
	"fmt"
)

// DuplicateChainError is returned when two chains normalise to the same id.
type DuplicateChainError struct {
	Structure string
	Chain     string
}

func (e *DuplicateChainError) Error() string {
	return fmt.Sprintf("%s: duplicate chain %q", e.Structure, e.Chain)
}

// Structure is a named set of chains, each an ordered run of 1-letter
// residue codes. Chain order is insertion order.
type Structure struct {
	Name   string
	chains []string
	seqs   map[string][]byte
}

func New(name string) *Structure {
	return &Structure{Name: name, seqs: map[string][]byte{}}
}

// AddChain appends a chain. seq is copied.
func (s *Structure) AddChain(id string, seq []byte) error {
	if !validChainID(id) {
		return fmt.Errorf("%s: chain id %q must be a single uppercase letter", s.Name, id)
	}
	if _, dup := s.seqs[id]; dup {
		return &DuplicateChainError{Structure: s.Name, Chain: id}
	}
	s.chains = append(s.chains, id)
	s.seqs[id] = append([]byte(nil), seq...)
	return nil
}

// Chains returns chain ids in load order.
func (s *Structure) Chains() []string {
	return append([]string(nil), s.chains...)
}

// Has reports whether the chain exists.
func (s *Structure) Has(id string) bool {
	_, ok := s.seqs[id]
	return ok
}

// Sequence returns the residues of chain id. The slice must not be modified.
func (s *Structure) Sequence(id string) ([]byte, bool) {
	seq, ok := s.seqs[id]
	return seq, ok
}

// Len is the residue count of chain id (0 when absent).
func (s *Structure) Len(id string) int { return len(s.seqs[id]) }

func validChainID(id string) bool {
	return len(id) == 1 && id[0] >= 'A' && id[0] <= 'Z'
}
