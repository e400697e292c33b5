// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
}

func list(t *testing.T, dir string) []pkg {
	t.Helper()
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list in %s: %v", dir, err)
	}
	var pkgs []pkg
	dec := json.NewDecoder(&out)
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		pkgs = append(pkgs, p)
	}
	return pkgs
}

func TestImportBoundaries(t *testing.T) {
	apps := []string{"mpnnbias/internal/biasapp", "mpnnbias/internal/sortapp", "mpnnbias/cmd/"}
	clis := []string{"mpnnbias/internal/biascli", "mpnnbias/internal/sortcli"}
	bans := map[string][]string{
		"mpnnbias/internal/writers":  append(append([]string{"mpnnbias/internal/appshell"}, apps...), clis...),
		"mpnnbias/internal/scores":   append(append([]string{"mpnnbias/internal/writers"}, apps...), clis...),
		"mpnnbias/internal/cmdutil":  append(append([]string{"mpnnbias/internal/appshell"}, apps...), clis...),
		"mpnnbias/internal/jsonutil": apps,
		"mpnnbias/internal/clibase":  append(append([]string{}, apps...), clis...),
		"mpnnbias/internal/biascli":  append([]string{"mpnnbias/internal/sortcli", "mpnnbias/internal/writers"}, apps...),
		"mpnnbias/internal/sortcli":  append([]string{"mpnnbias/internal/biascli", "mpnnbias/internal/writers"}, apps...),
		"mpnnbias/internal/biasapp":  {"mpnnbias/internal/sortapp", "mpnnbias/internal/sortcli", "mpnnbias/cmd/"},
		"mpnnbias/internal/sortapp":  {"mpnnbias/internal/biasapp", "mpnnbias/internal/biascli", "mpnnbias/cmd/"},
	}

	var violations []string
	for _, p := range list(t, "../..") {
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(p.ImportPath, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, p.ImportPath+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}

// The core module stays free of third-party code and of the CLI layer.
func TestCoreIsSelfContained(t *testing.T) {
	var violations []string
	for _, p := range list(t, "../../core") {
		for _, dep := range p.Imports {
			first, _, _ := strings.Cut(dep, "/")
			if strings.Contains(first, ".") || strings.HasPrefix(dep, "mpnnbias/") {
				violations = append(violations, p.ImportPath+" → "+dep)
			}
		}
	}
	if len(violations) > 0 {
		t.Fatalf("core imports outside the standard library:\n  %s", strings.Join(violations, "\n  "))
	}
}
