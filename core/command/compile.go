// core/command/compile.go
package command

import (
	"mpnnbias-core/bias"
	"mpnnbias-core/selection"
	"mpnnbias-core/structure"
)

// Compile evaluates the clauses against s, folding left to right.
func (c *Command) Compile(s *structure.Structure) (bias.ResidueBias, error) {
	var sel selection.Selection
	for i, cl := range c.Clauses {
		next, err := cl.Selector.Evaluate(s)
		if err != nil {
			return bias.ResidueBias{}, &ParseError{Command: c.Text, Token: cl.Text, Reason: "bad selection", Err: err}
		}
		switch {
		case i == 0:
			sel = next
		case c.Ops[i-1] == OpOr:
			sel = selection.Or(sel, next)
		default:
			sel = selection.And(sel, next)
		}
	}
	return bias.ResidueBias{Selection: sel, Bias: c.Bias}, nil
}

// Compile parses and compiles one statement.
func Compile(text string, s *structure.Structure) (bias.ResidueBias, error) {
	cmd, err := Parse(text)
	if err != nil {
		return bias.ResidueBias{}, err
	}
	return cmd.Compile(s)
}

// ParseAll parses every statement, stopping at the first error.
func ParseAll(texts []string) ([]*Command, error) {
	out := make([]*Command, 0, len(texts))
	for _, t := range texts {
		cmd, err := Parse(t)
		if err != nil {
			return nil, err
		}
		out = append(out, cmd)
	}
	return out, nil
}

// CompileAll compiles commands against s, keeping their order.
func CompileAll(cmds []*Command, s *structure.Structure) ([]bias.ResidueBias, error) {
	out := make([]bias.ResidueBias, 0, len(cmds))
	for _, c := range cmds {
		rb, err := c.Compile(s)
		if err != nil {
			return nil, err
		}
		out = append(out, rb)
	}
	return out, nil
}
