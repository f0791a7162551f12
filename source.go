package dsense

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtensions are the file extensions recognized as D source files.
var DefaultExtensions = []string{".d", ".di"}

// Source finds D files by import name.
type Source interface {
	// Find locates a module by its dotted import name ("std.stdio").
	// Returns the file content, source path for diagnostics, or
	// fs.ErrNotExist if not found.
	Find(name string) (io.ReadCloser, string, error)

	// ListFiles returns all D file paths known to this source.
	// Used for parallel loading.
	ListFiles() ([]string, error)
}

// SourceOption configures a source.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	extensions []string
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		extensions: DefaultExtensions,
	}
}

// WithExtensions sets the file extensions to recognize for this source.
func WithExtensions(exts ...string) SourceOption {
	return func(c *sourceConfig) {
		c.extensions = exts
	}
}

// relativeCandidates maps a dotted import name to candidate relative
// paths without extension: "std.stdio" tries std/stdio and the package
// form std/stdio/package.
func relativeCandidates(name string) []string {
	rel := strings.ReplaceAll(name, ".", "/")
	return []string{rel, rel + "/package"}
}

// --- Dir Source (one import directory) ---

type dirSource struct {
	path   string
	config sourceConfig
}

// Dir creates a Source rooted at one import directory. Find resolves
// dotted import names against the directory layout the way a compiler
// -I path does; ListFiles walks the whole tree.
func Dir(path string, opts ...SourceOption) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrInvalid}
	}
	cfg := defaultSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &dirSource{path: path, config: cfg}, nil
}

// MustDir is like Dir but panics on error.
func MustDir(path string, opts ...SourceOption) Source {
	src, err := Dir(path, opts...)
	if err != nil {
		panic(err)
	}
	return src
}

func (s *dirSource) Find(name string) (io.ReadCloser, string, error) {
	for _, rel := range relativeCandidates(name) {
		for _, ext := range s.config.extensions {
			fullPath := filepath.Join(s.path, filepath.FromSlash(rel)+ext)
			f, err := os.Open(fullPath)
			if err == nil {
				if info, statErr := f.Stat(); statErr == nil && !info.IsDir() {
					return f, fullPath, nil
				}
				_ = f.Close()
				continue
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fullPath, err
			}
		}
	}
	return nil, "", fs.ErrNotExist
}

func (s *dirSource) ListFiles() ([]string, error) {
	extSet := makeExtensionSet(s.config.extensions)
	var files []string

	err := filepath.WalkDir(s.path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if hasValidExtension(path, extSet) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// --- Multi Source (combines multiple sources) ---

type multiSource struct {
	sources []Source
}

// Multi combines multiple sources into one.
// Find() tries each source in order, returning the first match.
func Multi(sources ...Source) Source {
	return &multiSource{sources: sources}
}

func (s *multiSource) Find(name string) (io.ReadCloser, string, error) {
	for _, src := range s.sources {
		r, path, err := src.Find(name)
		if err == nil {
			return r, path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, path, err
		}
	}
	return nil, "", fs.ErrNotExist
}

func (s *multiSource) ListFiles() ([]string, error) {
	var files []string
	for _, src := range s.sources {
		f, err := src.ListFiles()
		if err != nil {
			return nil, err
		}
		files = append(files, f...)
	}
	return files, nil
}

// --- Helpers ---

func makeExtensionSet(extensions []string) map[string]struct{} {
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(ext)] = struct{}{}
	}
	return set
}

func hasValidExtension(path string, extSet map[string]struct{}) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := extSet[ext]
	return ok
}
