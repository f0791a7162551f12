package main

import (
	"bufio"
	"fmt"
	"html"
	"os"

	"github.com/dlangtools/dsense"
)

type HighlightCmd struct {
	File string `arg:"" help:"D source file." type:"existingfile"`
}

const highlightHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
pre { font-family: monospace; }
.kw { color: #0000aa; font-weight: bold; }
.num { color: #008800; }
.str { color: #aa2200; }
.com { color: #888888; font-style: italic; }
.op { color: #444444; }
</style>
</head>
<body>
<pre>`

const highlightFooter = `</pre>
</body>
</html>
`

func (c *HighlightCmd) Run(g *Globals) error {
	content, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}

	// Everything mode keeps whitespace and comments, so the output
	// reproduces the file layout exactly.
	tokens := dsense.Tokenize(string(content), dsense.IterateEverything, g.options()...)

	w := bufio.NewWriter(os.Stdout)
	fmt.Fprintf(w, highlightHeader, html.EscapeString(c.File))
	for _, tok := range tokens {
		text := html.EscapeString(tok.Text)
		if class := highlightClass(tok.Kind); class != "" {
			fmt.Fprintf(w, `<span class="%s">%s</span>`, class, text)
		} else {
			w.WriteString(text)
		}
	}
	w.WriteString(highlightFooter)
	return w.Flush()
}

func highlightClass(kind dsense.TokenKind) string {
	switch {
	case kind.IsKeyword():
		return "kw"
	case kind.IsOperator():
		return "op"
	}
	switch kind {
	case dsense.TokNumber:
		return "num"
	case dsense.TokString:
		return "str"
	case dsense.TokComment:
		return "com"
	default:
		return ""
	}
}
