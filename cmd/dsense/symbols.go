package main

import (
	"os"

	"github.com/dlangtools/dsense"
)

type SymbolsCmd struct {
	File string `arg:"" help:"D source file." type:"existingfile"`
}

func (c *SymbolsCmd) Run(g *Globals) error {
	content, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}

	m := dsense.Parse(string(content), g.options()...)
	return writeJSON(moduleToJSON(m))
}
