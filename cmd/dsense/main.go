// Command dsense is a CLI front end for D source intelligence:
// token dumps, symbol listings, completion, call tips, ctags, and
// HTML highlighting.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/dlangtools/dsense"
)

type CLI struct {
	Globals

	Tokens    TokensCmd    `cmd:"" help:"Dump the token stream of a D file as JSON."`
	Symbols   SymbolsCmd   `cmd:"" help:"Dump the entity model of a D file as JSON."`
	Complete  CompleteCmd  `cmd:"" help:"List the members available after a dot."`
	Calltips  CalltipsCmd  `cmd:"" help:"Show call signatures for a function."`
	Ctags     CtagsCmd     `cmd:"" help:"Generate a ctags tags file."`
	Highlight HighlightCmd `cmd:"" help:"Render a D file as syntax-highlighted HTML."`
	Version   VersionCmd   `cmd:"" help:"Show version."`
}

// Globals are the flags shared by every subcommand.
type Globals struct {
	Path    []string `help:"Add an import search path (repeatable)." short:"I" name:"path" placeholder:"DIR"`
	Config  string   `help:"Project config file (default: dsense.toml if present)." short:"c" placeholder:"FILE"`
	System  bool     `help:"Also discover import paths from DFLAGS and dmd.conf." short:"s"`
	Verbose int      `help:"Increase log verbosity (-v debug, -vv trace)." short:"v" type:"counter"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dsense"),
		kong.Description("D source intelligence: tokens, symbols, completion."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

func (g *Globals) logger() *slog.Logger {
	if g.Verbose == 0 {
		return nil
	}
	level := slog.LevelDebug
	if g.Verbose >= 2 {
		level = dsense.LevelTrace
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func (g *Globals) options() []dsense.Option {
	var opts []dsense.Option
	if logger := g.logger(); logger != nil {
		opts = append(opts, dsense.WithLogger(logger))
	}
	if g.System {
		opts = append(opts, dsense.WithSystemPaths())
	}
	return opts
}

// importDirs merges -I flags with the project config's import paths.
func (g *Globals) importDirs() ([]string, error) {
	cfg, err := loadProjectConfig(g.Config)
	if err != nil {
		return nil, err
	}
	return append(g.Path, cfg.ImportPaths...), nil
}

// buildSource composes the import directories into one Source, or nil
// when none are configured.
func (g *Globals) buildSource() (dsense.Source, error) {
	dirs, err := g.importDirs()
	if err != nil {
		return nil, err
	}
	cfg, err := loadProjectConfig(g.Config)
	if err != nil {
		return nil, err
	}

	var srcOpts []dsense.SourceOption
	if len(cfg.Extensions) > 0 {
		srcOpts = append(srcOpts, dsense.WithExtensions(cfg.Extensions...))
	}

	var sources []dsense.Source
	for _, dir := range dirs {
		src, err := dsense.Dir(dir, srcOpts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: cannot access path %s: %v\n", dir, err)
			continue
		}
		sources = append(sources, src)
	}
	if len(sources) == 0 {
		return nil, nil
	}
	return dsense.Multi(sources...), nil
}

// loadContext parses the file and its import directories into a
// completion context.
func (g *Globals) loadContext(file string) (*dsense.Context, string, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, "", err
	}
	source := string(content)

	src, err := g.buildSource()
	if err != nil {
		return nil, "", err
	}
	if src == nil && !g.System {
		return dsense.NewContext(dsense.Parse(source, g.options()...), g.options()...), source, nil
	}

	ctx, err := dsense.Load(source, src, g.options()...)
	if err != nil {
		return nil, "", err
	}
	return ctx, source, nil
}
