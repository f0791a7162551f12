package main

import (
	"fmt"
	"runtime/debug"
)

type VersionCmd struct{}

func (c *VersionCmd) Run(g *Globals) error {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("dsense %s\n", version)
	return nil
}
