package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lincolncommercialsolutions/secret-scanner/internal/cache"
	"github.com/lincolncommercialsolutions/secret-scanner/internal/git"
	"github.com/lincolncommercialsolutions/secret-scanner/internal/logging"
	"github.com/lincolncommercialsolutions/secret-scanner/internal/rules"
	"github.com/lincolncommercialsolutions/secret-scanner/internal/scanner"
	"github.com/lincolncommercialsolutions/secret-scanner/internal/types"
)

var (
	// ErrTargetNotFound is returned when the scan target does not exist.
	ErrTargetNotFound = errors.New("target not found")
	// ErrInvalidTarget is returned when the target is neither a regular file
	// nor a directory, or cannot be resolved at all (a symlink cycle, say).
	ErrInvalidTarget = errors.New("invalid target")
)

// Config controls a single scan invocation. The zero value scans nothing;
// callers set Target and normally leave Rules/Exclusions nil to get the
// built-in rule set.
type Config struct {
	// Target is the file, directory, or repository to scan.
	Target string
	// Rules is the detection rule set. nil selects rules.Defaults().
	Rules []rules.Rule
	// Exclusions are path regexes that disable scanning for matching paths.
	// nil selects rules.DefaultExclusions().
	Exclusions []string

	// History switches from filesystem scanning to commit-history scanning.
	History bool
	// MaxCommits caps history scans; zero means unlimited.
	MaxCommits int
	// Branch selects the revision history is walked from. Empty means HEAD.
	Branch string

	// IncludeGlobs and ExcludeGlobs are comma-separated path globs applied
	// by the file walker in addition to the exclusion regexes.
	IncludeGlobs string
	ExcludeGlobs string
	// MaxBytes skips files larger than this during directory scans. Zero
	// disables the gate.
	MaxBytes int64

	// UseCache enables the incremental scan cache for directory scans:
	// files whose content hash matches the previous run are not re-scanned.
	// Off by default so repeated scans of identical trees stay reproducible.
	UseCache bool

	// Progress, when set, is invoked once per scanned unit (file or commit).
	Progress func()
}

// Result carries findings plus scan statistics.
type Result struct {
	Findings       []types.Finding
	FilesScanned   int
	CommitsScanned int
	Duration       time.Duration
	// SkippedRules lists rules dropped at compile time for bad patterns.
	SkippedRules []rules.SkippedRule
}

// Scan runs a scan and returns only the findings.
func Scan(ctx context.Context, cfg Config) ([]types.Finding, error) {
	res, err := ScanWithStats(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

// ScanWithStats runs a scan and returns findings along with timing and
// counts. The rule set is compiled exactly once and shared across every
// content block. Findings preserve discovery order: rule order within a
// block, block order within the traversal.
func ScanWithStats(ctx context.Context, cfg Config) (Result, error) {
	var result Result
	started := time.Now()

	if cfg.Rules == nil {
		cfg.Rules = rules.Defaults()
	}
	if cfg.Exclusions == nil {
		cfg.Exclusions = rules.DefaultExclusions()
	}
	set := rules.Compile(cfg.Rules, cfg.Exclusions)
	result.SkippedRules = set.Skipped
	sc := scanner.New(set)

	info, err := os.Stat(cfg.Target)
	if err != nil {
		if os.IsNotExist(err) {
			return result, fmt.Errorf("%w: %s", ErrTargetNotFound, cfg.Target)
		}
		return result, fmt.Errorf("%w: stat %s: %v", ErrInvalidTarget, cfg.Target, err)
	}

	switch {
	case cfg.History:
		err = scanHistory(ctx, cfg, sc, &result)
	case info.Mode().IsRegular():
		err = scanSingleFile(cfg, sc, &result)
	case info.IsDir():
		err = scanFilesystem(ctx, cfg, sc, &result)
	default:
		err = fmt.Errorf("%w: %s", ErrInvalidTarget, cfg.Target)
	}
	result.Duration = time.Since(started)
	return result, err
}

// scanSingleFile scans one file. Read failures and binary content are
// non-fatal: the result is simply empty.
func scanSingleFile(cfg Config, sc *scanner.Scanner, result *Result) error {
	path := cfg.Target
	if sc.ExcludedPath(path) {
		return nil
	}
	if binaryExtensions[strings.ToLower(filepath.Ext(path))] {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logging.L().Warnw("skipping unreadable file", "path", path, "error", err)
		return nil
	}
	if looksBinary(data) {
		return nil
	}
	result.FilesScanned++
	if cfg.Progress != nil {
		cfg.Progress()
	}
	result.Findings = append(result.Findings, sc.ScanContent(string(data), path, "")...)
	return nil
}

// scanFilesystem walks the target directory and scans each eligible file.
func scanFilesystem(ctx context.Context, cfg Config, sc *scanner.Scanner, result *Result) error {
	var db cache.DB
	updated := map[string]string{}
	if cfg.UseCache {
		db, _ = cache.Load(cfg.Target)
	}

	err := walk(ctx, cfg, func(rel string, data []byte) {
		if cfg.UseCache {
			key := cache.Key(data)
			if db.Entries[rel] == key {
				return
			}
			updated[rel] = key
		}
		result.FilesScanned++
		if cfg.Progress != nil {
			cfg.Progress()
		}
		result.Findings = append(result.Findings, sc.ScanContent(string(data), rel, "")...)
	})
	if err != nil {
		return err
	}

	if cfg.UseCache && len(updated) > 0 {
		if db.Entries == nil {
			db.Entries = map[string]string{}
		}
		for k, v := range updated {
			db.Entries[k] = v
		}
		if err := cache.Save(cfg.Target, db); err != nil {
			logging.L().Debugw("could not persist scan cache", "error", err)
		}
	}
	return nil
}

// scanHistory walks commit history and scans the added lines of every
// changed file, carrying commit provenance into the findings.
func scanHistory(ctx context.Context, cfg Config, sc *scanner.Scanner, result *Result) error {
	opts := git.Options{
		MaxCommits: cfg.MaxCommits,
		Branch:     cfg.Branch,
		SkipPath:   sc.ExcludedPath,
	}
	commits, err := git.Walk(ctx, cfg.Target, opts, func(ch git.Change) error {
		content := git.AddedContent(ch.Lines)
		if content == "" {
			return nil
		}
		result.FilesScanned++
		if cfg.Progress != nil {
			cfg.Progress()
		}
		result.Findings = append(result.Findings, sc.ScanContent(content, ch.Path, ch.Commit)...)
		return nil
	})
	result.CommitsScanned = commits
	return err
}
