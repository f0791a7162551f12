package dsense

import (
	"cmp"
	"context"
	"log/slog"
	"os"
	"runtime"
	"slices"
	"sync"

	"github.com/dlangtools/dsense/internal/ast"
	"github.com/dlangtools/dsense/internal/lexer"
	"github.com/dlangtools/dsense/internal/parser"
)

// Load parses the current buffer plus every file the source lists and
// returns a completion context: the buffer becomes the current module
// and the listed files its auxiliary modules, in deterministic module
// name order. Use Multi() to combine multiple sources; files that
// cannot be read or do not look like D source are skipped.
//
// Example:
//
//	ctx, err := dsense.Load(buffer,
//	    dsense.MustDir("/usr/include/dmd/phobos"),
//	    dsense.WithLogger(slog.Default()),
//	)
func Load(current string, source Source, opts ...Option) (*Context, error) {
	cfg := newConfig(opts...)

	var sources []Source
	if source != nil {
		sources = append(sources, source)
	}
	if cfg.systemPaths {
		sources = append(sources, systemSources()...)
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	logger := cfg.logger

	var allFiles []string
	for _, src := range sources {
		files, err := src.ListFiles()
		if err != nil {
			return nil, err
		}
		allFiles = append(allFiles, files...)
	}

	if logEnabled(logger, slog.LevelInfo) {
		logger.LogAttrs(context.Background(), slog.LevelInfo, "parallel loading",
			slog.Int("files", len(allFiles)))
	}

	results := make(chan *ast.Module, len(allFiles))

	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.NumCPU())

	for _, file := range allFiles {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			content, err := os.ReadFile(path)
			if err != nil {
				return
			}
			if !looksLikeDSource(content) {
				return
			}

			tokens := lexer.Tokenize(string(content), lexer.IterateCode,
				componentLogger(logger, "lexer"))
			mod := parser.Parse(tokens, componentLogger(logger, "parser"))
			if mod != nil {
				results <- mod
			}
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var mods []*ast.Module
	for mod := range results {
		mods = append(mods, mod)
	}
	slices.SortFunc(mods, func(a, b *ast.Module) int {
		return cmp.Compare(a.Name, b.Name)
	})

	if logEnabled(logger, slog.LevelInfo) {
		logger.LogAttrs(context.Background(), slog.LevelInfo, "parallel loading complete",
			slog.Int("modules", len(mods)))
	}

	cc := NewContext(Parse(current, opts...), opts...)
	for _, mod := range mods {
		cc.AddModule(mod)
	}
	return cc, nil
}

// looksLikeDSource rejects binary content so a stray object file in an
// import directory does not feed garbage to the lexer.
func looksLikeDSource(content []byte) bool {
	checkLen := 1024
	if checkLen > len(content) {
		checkLen = len(content)
	}
	for _, b := range content[:checkLen] {
		if b == 0 {
			return false
		}
	}
	return true
}
