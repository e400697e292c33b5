// core/structure/load.go
package structure

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"mpnnbias-core/input"
	"mpnnbias-core/residue"
)

const seqPrefix = "seq_"

// Load reads structures from a JSON file, a JSON Lines file, or every
// *.json / *.jsonl file in a directory (sorted by file name).
func Load(path string) ([]*Structure, error) {
	if path != input.Stdin {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			return loadDir(path)
		}
	}
	return loadFile(path)
}

func loadDir(dir string) ([]*Structure, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(strings.TrimSuffix(e.Name(), ".gz")))
		if ext == ".json" || ext == ".jsonl" {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%s: no .json or .jsonl files", dir)
	}
	sort.Strings(names)

	var out []*Structure
	for _, n := range names {
		list, err := loadFile(filepath.Join(dir, n))
		if err != nil {
			return nil, err
		}
		out = append(out, list...)
	}
	return out, nil
}

func loadFile(path string) ([]*Structure, error) {
	rc, err := input.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	list, err := Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// Decode reads one or more concatenated structure objects (a single JSON
// document or JSON Lines). Keys keep their document order so chains are
// listed as they appear.
func Decode(r io.Reader) ([]*Structure, error) {
	dec := json.NewDecoder(r)
	var out []*Structure
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); !ok || d != '{' {
			return nil, fmt.Errorf("structure %d: expected a JSON object", len(out)+1)
		}
		s, err := decodeObject(dec)
		if err != nil {
			return nil, fmt.Errorf("structure %d: %w", len(out)+1, err)
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, errors.New("no structures found")
	}
	return out, nil
}

type rawChain struct {
	key string
	raw json.RawMessage
}

// decodeObject consumes the members of an object whose '{' was already read.
func decodeObject(dec *json.Decoder) (*Structure, error) {
	var (
		name    *string
		pending []rawChain
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		switch {
		case key == "name":
			if string(raw) == "null" {
				continue
			}
			var n string
			if err := json.Unmarshal(raw, &n); err != nil {
				return nil, errors.New(`field "name" must be a string`)
			}
			name = &n
		case strings.HasPrefix(key, seqPrefix) && len(key) > len(seqPrefix):
			pending = append(pending, rawChain{key: key, raw: raw})
		}
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, err
	}
	if name == nil {
		return nil, errors.New("missing name in structure JSON")
	}

	s := New(*name)
	for _, c := range pending {
		id := strings.ToUpper(c.key[len(c.key)-1:])
		seq, err := decodeResidues(c.raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", s.Name, c.key, err)
		}
		if err := s.AddChain(id, seq); err != nil {
			return nil, err
		}
	}
	if len(s.chains) == 0 {
		return nil, fmt.Errorf("%s: no seq_<chain> fields", s.Name)
	}
	return s, nil
}

// decodeResidues accepts either a list of 1/3-letter codes or a string of
// 1-letter codes.
func decodeResidues(raw json.RawMessage) ([]byte, error) {
	var codes []string
	if err := json.Unmarshal(raw, &codes); err != nil {
		var str string
		if err2 := json.Unmarshal(raw, &str); err2 != nil {
			return nil, errors.New("expected a list of residue codes or a sequence string")
		}
		codes = make([]string, len(str))
		for i := 0; i < len(str); i++ {
			codes[i] = str[i : i+1]
		}
	}
	seq := make([]byte, len(codes))
	for i, c := range codes {
		one, err := residue.ToOneLetter(c)
		if err != nil {
			return nil, fmt.Errorf("residue %d: %w", i+1, err)
		}
		seq[i] = one
	}
	return seq, nil
}
