package engine

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"

	"github.com/lincolncommercialsolutions/secret-scanner/internal/logging"
)

// binarySniffLen is how much of a file is inspected for NUL bytes before it
// is treated as binary.
const binarySniffLen = 8192

// walk traverses the tree under cfg.Target and invokes handle for each
// regular text file that survives glob, size, and binary filtering. Unreadable
// files are skipped with a diagnostic. The context is checked at every file
// boundary.
func walk(ctx context.Context, cfg Config, handle func(rel string, data []byte)) error {
	globs := newGlobFilter(cfg.IncludeGlobs, cfg.ExcludeGlobs)
	return filepath.WalkDir(cfg.Target, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			logging.L().Debugw("skipping unreadable entry", "path", p, "error", err)
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if p != cfg.Target && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if isDefaultFileExcluded(d.Name()) {
			return nil
		}
		rel, _ := filepath.Rel(cfg.Target, p)
		rel = filepath.ToSlash(rel)
		if !globs.allow(rel) {
			return nil
		}
		if info, err := d.Info(); err == nil && cfg.MaxBytes > 0 && info.Size() > cfg.MaxBytes {
			logging.L().Debugw("skipping oversized file", "path", rel, "bytes", info.Size())
			return nil
		}
		if binaryExtensions[strings.ToLower(filepath.Ext(rel))] {
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			logging.L().Warnw("skipping unreadable file", "path", rel, "error", err)
			return nil
		}
		if looksBinary(data) {
			return nil
		}
		handle(rel, data)
		return nil
	})
}

// looksBinary reports whether the first 8 KiB contain a NUL byte. A cheap
// heuristic, not a content-type sniffer; binary files without early NULs slip
// through and are simply scanned as text.
func looksBinary(b []byte) bool {
	n := len(b)
	if n > binarySniffLen {
		n = binarySniffLen
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}

// globFilter holds the include/exclude glob lists, parsed once per walk
// rather than once per file. Includes, when present, act as a positive
// filter; excludes are subtracted last. Paths are matched with forward-slash
// semantics.
type globFilter struct {
	includes []string
	excludes []string
}

func newGlobFilter(include, exclude string) globFilter {
	return globFilter{
		includes: splitGlobs(include),
		excludes: splitGlobs(exclude),
	}
}

func (f globFilter) allow(rel string) bool {
	if len(f.includes) > 0 && !matchesAny(rel, f.includes) {
		return false
	}
	return !matchesAny(rel, f.excludes)
}

// splitGlobs expands a comma-separated glob list. Each pattern is also kept
// with any leading "./" or "**/" stripped so "**/*.py" and "*.py" behave
// alike at the tree root.
func splitGlobs(s string) []string {
	var out []string
	for _, g := range strings.Split(s, ",") {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		out = append(out, g)
		if bare := bareGlob(g); bare != g {
			out = append(out, bare)
		}
	}
	return out
}

func bareGlob(g string) string {
	g = strings.TrimPrefix(g, "./")
	for strings.HasPrefix(g, "**/") {
		g = g[len("**/"):]
	}
	return g
}

func matchesAny(rel string, globs []string) bool {
	base := path.Base(rel)
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, base); ok {
			return true
		}
	}
	return false
}
