// internal/scores/scores.go
package scores

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"mpnnbias-core/input"
)

// DefaultField is the comma-separated header field holding the score in
// ProteinMPNN output ("T=0.1, sample=1, score=0.72, ...").
const DefaultField = 2

// Record is one FASTA entry; Header excludes the leading '>'.
type Record struct {
	Header string
	Seq    string
}

// Read parses every record of a FASTA file ("-" for stdin, gzip accepted).
func Read(path string) ([]Record, error) {
	rc, err := input.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	recs, err := Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// Decode parses FASTA from r.
func Decode(r io.Reader) ([]Record, error) {
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.Protein)))
	var out []Record
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		header := s.Name()
		if d := s.Description(); d != "" {
			header += " " + d
		}
		res := make([]byte, len(s.Seq))
		for i, l := range s.Seq {
			res[i] = byte(l)
		}
		out = append(out, Record{Header: header, Seq: string(res)})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	return out, nil
}

// Score extracts the value of the field-th comma-separated "key=value" pair.
func Score(header string, field int) (float64, error) {
	parts := strings.Split(header, ",")
	if field < 0 || field >= len(parts) {
		return 0, fmt.Errorf("header %q has no field %d", header, field)
	}
	_, val, ok := strings.Cut(parts[field], "=")
	if !ok {
		return 0, fmt.Errorf("header %q: field %d is not key=value", header, field)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return 0, fmt.Errorf("header %q: bad score %q", header, val)
	}
	return f, nil
}

// Sort orders recs by score, ascending unless reverse. Ties keep input order.
func Sort(recs []Record, field int, reverse bool) error {
	type keyed struct {
		rec   Record
		score float64
	}
	ks := make([]keyed, len(recs))
	for i, r := range recs {
		f, err := Score(r.Header, field)
		if err != nil {
			return err
		}
		ks[i] = keyed{rec: r, score: f}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		if reverse {
			return ks[i].score > ks[j].score
		}
		return ks[i].score < ks[j].score
	})
	for i := range ks {
		recs[i] = ks[i].rec
	}
	return nil
}

// Encode renders recs as ">header\nsequence\n" pairs.
func Encode(recs []Record) []byte {
	var b bytes.Buffer
	for _, r := range recs {
		b.WriteByte('>')
		b.WriteString(r.Header)
		b.WriteByte('\n')
		b.WriteString(r.Seq)
		b.WriteByte('\n')
	}
	return b.Bytes()
}
