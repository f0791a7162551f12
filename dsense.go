// Package dsense provides lexing, symbol modeling, and completion
// queries for D source code.
package dsense

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dlangtools/dsense/internal/lexer"
	"github.com/dlangtools/dsense/internal/parser"
	"github.com/dlangtools/dsense/internal/resolver"
)

// ErrNoSources is returned when Load is called with no sources.
var ErrNoSources = errors.New("no D sources provided")

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-item iteration logging (tokens, members, call tips).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

// Option configures Tokenize, Parse, NewContext, and Load.
type Option func(*config)

type config struct {
	logger      *slog.Logger
	systemPaths bool
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// Tokenize scans D source text and returns the token stream.
//
// Example:
//
//	tokens := dsense.Tokenize(source, dsense.IterateCode)
func Tokenize(source string, style IterationStyle, opts ...Option) []Token {
	cfg := newConfig(opts...)
	return lexer.Tokenize(source, style, componentLogger(cfg.logger, "lexer"))
}

// Parse tokenizes one buffer and parses it into its entity model.
func Parse(source string, opts ...Option) *Module {
	cfg := newConfig(opts...)
	tokens := lexer.Tokenize(source, lexer.IterateCode, componentLogger(cfg.logger, "lexer"))
	return parser.Parse(tokens, componentLogger(cfg.logger, "parser"))
}

// NewContext returns a completion context over the given current module.
// Auxiliary modules are added with Context.AddModule.
func NewContext(current *Module, opts ...Option) *Context {
	cfg := newConfig(opts...)
	return resolver.New(current, componentLogger(cfg.logger, "resolver"))
}

func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("component", component))
}

// logEnabled returns true if logging is enabled at the given level.
func logEnabled(logger *slog.Logger, level slog.Level) bool {
	return logger != nil && logger.Enabled(context.Background(), level)
}
