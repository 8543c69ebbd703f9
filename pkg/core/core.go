package core

import (
	"context"
	"encoding/json"
	"io"

	"github.com/lincolncommercialsolutions/secret-scanner/internal/engine"
	"github.com/lincolncommercialsolutions/secret-scanner/internal/rules"
	"github.com/lincolncommercialsolutions/secret-scanner/internal/types"
)

// Re-export selected internal types as a stable public API surface. These are
// type aliases so external consumers can depend on a stable path while the
// internal packages keep moving.
type (
	Config  = engine.Config
	Finding = types.Finding
	Rule    = rules.Rule
	Result  = engine.Result
)

// Scan is the stable entrypoint for other programs.
func Scan(ctx context.Context, cfg Config) ([]Finding, error) {
	return engine.Scan(ctx, cfg)
}

// ScanWithStats runs a scan and also returns file/commit counts and timing.
func ScanWithStats(ctx context.Context, cfg Config) (Result, error) {
	return engine.ScanWithStats(ctx, cfg)
}

// DefaultRules returns the built-in rule set, exposed for consumers that want
// to extend it before scanning.
func DefaultRules() []Rule { return rules.Defaults() }

// MarshalFindings writes findings to w as indented JSON, the same shape the
// CLI's json format emits.
func MarshalFindings(w io.Writer, findings []Finding) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}

// UnmarshalFindings reads findings back from a JSON stream produced by
// MarshalFindings or the CLI.
func UnmarshalFindings(r io.Reader) ([]Finding, error) {
	var fs []Finding
	if err := json.NewDecoder(r).Decode(&fs); err != nil {
		return nil, err
	}
	return fs, nil
}
