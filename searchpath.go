package dsense

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// WithSystemPaths enables automatic discovery of import directories from
// the D compiler environment (DFLAGS, dmd.conf files, defaults).
// Discovered paths are appended after any explicit source, serving as
// fallback. When source is nil and WithSystemPaths is set, system paths
// alone are sufficient.
func WithSystemPaths() Option {
	return func(c *config) { c.systemPaths = true }
}

// systemSources returns Sources for all discovered system import directories.
func systemSources() []Source {
	dirs := DiscoverImportPaths()
	var sources []Source
	for _, d := range dirs {
		if src, err := Dir(d); err == nil {
			sources = append(sources, src)
		}
	}
	return sources
}

// DiscoverImportPaths returns D import directories from the compiler
// environment: -I flags in the DFLAGS environment variable, DFLAGS
// lines in dmd.conf files, and compiled-in defaults, deduplicated and
// filtered to directories that exist.
func DiscoverImportPaths() []string {
	var all []string
	if v := os.Getenv("DFLAGS"); v != "" {
		all = append(all, importFlagPaths(v)...)
	}
	for _, cf := range dmdConfigFiles() {
		all = append(all, importPathsFromConfig(cf)...)
	}
	all = append(all, dmdDefaults()...)
	return filterExistingDirs(dedup(all))
}

func dmdDefaults() []string {
	return []string{
		"/usr/include/dmd/phobos",
		"/usr/include/dmd/druntime/import",
		"/usr/include/dlang/dmd",
		"/usr/local/include/dmd/phobos",
		"/usr/local/include/dmd/druntime/import",
	}
}

func dmdConfigFiles() []string {
	files := []string{"/etc/dmd.conf"}
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, "dmd.conf"))
		files = append(files, filepath.Join(home, ".dmd.conf"))
	}
	return files
}

// importPathsFromConfig extracts -I paths from a dmd.conf file. The
// format is ini-like; only DFLAGS lines matter. Values containing dmd's
// %-placeholders are skipped since they cannot be expanded here.
func importPathsFromConfig(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close() //nolint:errcheck // best-effort config file read

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == ';' || line[0] == '[' {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found || strings.TrimSpace(key) != "DFLAGS" {
			continue
		}
		paths = append(paths, importFlagPaths(value)...)
	}
	return paths
}

// importFlagPaths extracts the path of every -I flag in a DFLAGS value.
func importFlagPaths(flags string) []string {
	var paths []string
	for _, field := range strings.Fields(flags) {
		if !strings.HasPrefix(field, "-I") {
			continue
		}
		p := strings.TrimPrefix(field, "-I")
		p = strings.Trim(p, `"`)
		if p == "" || strings.Contains(p, "%") {
			continue
		}
		paths = append(paths, p)
	}
	return paths
}

func dedup(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	var result []string
	for _, p := range paths {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			result = append(result, p)
		}
	}
	return result
}

func filterExistingDirs(paths []string) []string {
	var result []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err == nil && info.IsDir() {
			result = append(result, p)
		}
	}
	return result
}
