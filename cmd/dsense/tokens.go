package main

import (
	"os"

	"github.com/dlangtools/dsense"
)

type TokensCmd struct {
	File     string `arg:"" help:"D source file." type:"existingfile"`
	Trivia   bool   `help:"Include whitespace and comment tokens." short:"t"`
	Keywords bool   `help:"Only keyword tokens." short:"k"`
}

func (c *TokensCmd) Run(g *Globals) error {
	content, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}

	style := dsense.IterateCode
	if c.Trivia {
		style = dsense.IterateEverything
	}
	tokens := dsense.Tokenize(string(content), style, g.options()...)

	out := make([]tokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == dsense.TokEOF {
			continue
		}
		if c.Keywords && !tok.Kind.IsKeyword() {
			continue
		}
		out = append(out, tokenJSON{
			Kind:  kindLabel(tok.Kind),
			Text:  tok.Text,
			Line:  tok.Line,
			Start: tok.Start,
		})
	}
	return writeJSON(out)
}
