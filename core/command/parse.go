// core/command/parse.go
package command

import (
	"fmt"
	"strings"

	"mpnnbias-core/bias"
	"mpnnbias-core/selection"
)

// Keywords of the command grammar:
//
//	command := "select" clause (logicOp clause)* "res" biasSpec
//	clause  := selectorKind selectorText
//	logicOp := "&" | "and" | "|" | "or"
const (
	KeywordSelect = "select"
	KeywordRes    = "res"
)

// Op joins two clauses.
type Op int

const (
	OpAnd Op = iota
	OpOr
)

func (o Op) String() string {
	if o == OpOr {
		return "or"
	}
	return "and"
}

func parseOp(tok string) (Op, bool) {
	switch tok {
	case "&", "and":
		return OpAnd, true
	case "|", "or":
		return OpOr, true
	}
	return 0, false
}

// Clause is one "kind text" selector of a command.
type Clause struct {
	Kind     string
	Text     string
	Selector selection.Selector
}

// Command is a parsed statement. Ops[i] joins the running selection with
// Clauses[i+1].
type Command struct {
	Text     string
	Clauses  []Clause
	Ops      []Op
	BiasSpec string
	Bias     bias.Vector
}

// ParseError reports a malformed command.
type ParseError struct {
	Command string
	Token   string
	Reason  string
	Err     error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "command %q: %s", e.Command, e.Reason)
	if e.Token != "" {
		fmt.Fprintf(&b, " (near %q)", e.Token)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

type parser struct {
	text string
	toks []string
	pos  int
}

func (p *parser) next() (string, bool) {
	if p.pos >= len(p.toks) {
		return "", false
	}
	t := p.toks[p.pos]
	p.pos++
	return t, true
}

func (p *parser) fail(tok, reason string, err error) *ParseError {
	return &ParseError{Command: p.text, Token: tok, Reason: reason, Err: err}
}

// Parse turns one statement (without its ';') into a Command.
func Parse(text string) (*Command, error) {
	p := &parser{text: text, toks: strings.Fields(text)}
	cmd := &Command{Text: text}

	kw, ok := p.next()
	if !ok {
		return nil, p.fail("", "empty command", nil)
	}
	if kw != KeywordSelect {
		return nil, p.fail(kw, fmt.Sprintf("command must start with %q", KeywordSelect), nil)
	}

	for {
		cl, err := p.clause()
		if err != nil {
			return nil, err
		}
		cmd.Clauses = append(cmd.Clauses, cl)

		tok, ok := p.next()
		if !ok {
			return nil, p.fail("", fmt.Sprintf("missing %q section", KeywordRes), nil)
		}
		if tok == KeywordRes {
			break
		}
		op, ok := parseOp(tok)
		if !ok {
			return nil, p.fail(tok, `unknown logical operator, want "&", "and", "|" or "or"`, nil)
		}
		cmd.Ops = append(cmd.Ops, op)
	}

	spec, ok := p.next()
	if !ok {
		return nil, p.fail(KeywordRes, "missing bias specification", nil)
	}
	if extra, ok := p.next(); ok {
		return nil, p.fail(extra, "unexpected token after bias specification", nil)
	}
	v, err := bias.ParseSpec(spec)
	if err != nil {
		return nil, p.fail(spec, "bad bias specification", err)
	}
	cmd.BiasSpec, cmd.Bias = spec, v
	return cmd, nil
}

func (p *parser) clause() (Clause, error) {
	kind, ok := p.next()
	if !ok || kind == KeywordRes {
		return Clause{}, p.fail(kind, "missing selector", nil)
	}
	if !isKind(kind) {
		return Clause{}, p.fail(kind, fmt.Sprintf("unknown selector, want one of %q", selection.Kinds), nil)
	}
	text, ok := p.next()
	if !ok || text == KeywordRes {
		return Clause{}, p.fail(kind, "missing selection after selector", nil)
	}
	sel, err := selection.Parse(kind, text)
	if err != nil {
		return Clause{}, p.fail(text, "bad selection", err)
	}
	return Clause{Kind: kind, Text: text, Selector: sel}, nil
}

func isKind(k string) bool {
	for _, v := range selection.Kinds {
		if v == k {
			return true
		}
	}
	return false
}
