package main

import (
	"fmt"
)

type CalltipsCmd struct {
	File      string `arg:"" help:"D source file." type:"existingfile"`
	Function  string `arg:"" help:"Function name at the call site."`
	Container string `help:"Aggregate the function is called on (empty: call-site scope)." short:"C"`
	Pos       int    `help:"Byte offset of the call site." short:"p" default:"0"`
}

func (c *CalltipsCmd) Run(g *Globals) error {
	ctx, _, err := g.loadContext(c.File)
	if err != nil {
		return err
	}

	for _, tip := range ctx.CallTipsFor(c.Container, c.Function, c.Pos) {
		fmt.Println(tip)
	}
	return nil
}
