package main

import (
	"sort"

	"github.com/dlangtools/dsense"
)

type CompleteCmd struct {
	File string `arg:"" help:"D source file." type:"existingfile"`
	Pos  int    `arg:"" help:"Byte offset of the cursor, just after the dot."`
}

func (c *CompleteCmd) Run(g *Globals) error {
	ctx, source, err := g.loadContext(c.File)
	if err != nil {
		return err
	}

	receiver := receiverBefore(dsense.Tokenize(source, dsense.IterateCode, g.options()...), c.Pos)
	if receiver == "" {
		return writeJSON([]completionJSON{})
	}

	typeName := resolveReceiverType(ctx, receiver, c.Pos)
	members := ctx.MembersOfType(typeName)

	out := make([]completionJSON, 0, len(members))
	for name, member := range members {
		out = append(out, completionJSON{
			Name: name,
			Type: member.Type,
			Kind: member.Kind.String(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return writeJSON(out)
}

// receiverBefore extracts the expression directly left of the dot at
// pos: an identifier or basic type name, optionally with a [] suffix.
func receiverBefore(tokens []dsense.Token, pos int) string {
	// Last token starting strictly before the cursor.
	i := len(tokens) - 1
	for i >= 0 && (tokens[i].Kind == dsense.TokEOF || tokens[i].Start >= pos) {
		i--
	}
	if i < 0 {
		return ""
	}

	// Cursor may sit on the dot itself or on a partial member name
	// following it.
	if tokens[i].Kind == dsense.TokIdentifier && i > 0 && tokens[i-1].Text == "." {
		i--
	}
	if tokens[i].Text != "." {
		return ""
	}
	i--
	if i < 0 {
		return ""
	}

	suffix := ""
	if tokens[i].Text == "]" && i > 0 && tokens[i-1].Text == "[" {
		suffix = "[]"
		i -= 2
	}
	if i < 0 {
		return ""
	}
	if tokens[i].Kind == dsense.TokIdentifier || tokens[i].Kind.IsBasicType() {
		return tokens[i].Text + suffix
	}
	return ""
}

// resolveReceiverType maps the receiver to a type name: a variable in
// the enclosing aggregates or any loaded module resolves to its
// declared type; anything else is taken as a type name directly
// (`MyStruct.` or `int.` completion).
func resolveReceiverType(ctx *dsense.Context, receiver string, pos int) string {
	for _, enclosing := range ctx.StructsContaining(pos) {
		for i := range enclosing.Variables {
			if enclosing.Variables[i].Name == receiver {
				return enclosing.Variables[i].Type
			}
		}
	}

	modules := []*dsense.Module{ctx.Current}
	modules = append(modules, ctx.Auxiliary...)
	for _, m := range modules {
		if m == nil {
			continue
		}
		for i := range m.Variables {
			if m.Variables[i].Name == receiver {
				return m.Variables[i].Type
			}
		}
	}
	return receiver
}
