package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/dlangtools/dsense"
)

type CtagsCmd struct {
	Files  []string `arg:"" help:"D source files." type:"existingfile"`
	Output string   `help:"Write to a file instead of stdout." short:"o" placeholder:"FILE"`
}

func (c *CtagsCmd) Run(g *Globals) error {
	out := os.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return err
		}
		defer f.Close() //nolint:errcheck
		out = f
	}

	var lines []string
	for _, file := range c.Files {
		content, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		m := dsense.Parse(string(content), g.options()...)
		lines = append(lines, tagLines(m, file)...)
	}
	sort.Strings(lines)

	w := bufio.NewWriter(out)
	fmt.Fprintln(w, "!_TAG_FILE_FORMAT\t2\t/extended format/")
	fmt.Fprintln(w, "!_TAG_FILE_SORTED\t1\t/0=unsorted, 1=sorted/")
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

// ctags kind letters, following the D convention:
// c class, i interface, s struct, u union, g enum, e enum member,
// f function, v variable, a alias.
func tagLines(m *dsense.Module, file string) []string {
	var lines []string
	tag := func(name string, line uint32, kind byte) {
		if name == "" {
			return
		}
		lines = append(lines, fmt.Sprintf("%s\t%s\t%d;\"\t%c", name, file, line, kind))
	}

	aggregate := func(s *dsense.Struct, kind byte) {
		tag(s.Name, s.Line, kind)
		for i := range s.Functions {
			tag(s.Functions[i].Name, s.Functions[i].Line, 'f')
		}
		for i := range s.Variables {
			tag(s.Variables[i].Name, s.Variables[i].Line, 'v')
		}
		for i := range s.Aliases {
			tag(s.Aliases[i].Name, s.Aliases[i].Line, 'a')
		}
	}

	for i := range m.Classes {
		aggregate(&m.Classes[i].Struct, 'c')
	}
	for i := range m.Interfaces {
		aggregate(&m.Interfaces[i].Struct, 'i')
	}
	for i := range m.Structs {
		aggregate(&m.Structs[i], 's')
	}
	for i := range m.Unions {
		aggregate(&m.Unions[i], 'u')
	}
	for i := range m.Functions {
		tag(m.Functions[i].Name, m.Functions[i].Line, 'f')
	}
	for i := range m.Variables {
		tag(m.Variables[i].Name, m.Variables[i].Line, 'v')
	}
	for i := range m.Enums {
		tag(m.Enums[i].Name, m.Enums[i].Line, 'g')
		for _, member := range m.Enums[i].Members {
			tag(member.Name, member.Line, 'e')
		}
	}
	for i := range m.Aliases {
		tag(m.Aliases[i].Name, m.Aliases[i].Line, 'a')
	}
	return lines
}
