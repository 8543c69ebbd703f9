package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/lincolncommercialsolutions/secret-scanner/internal/types"
)

// PrintOptions adjusts console rendering.
type PrintOptions struct {
	NoColor      bool
	Verbose      bool
	Duration     time.Duration
	FilesScanned int
}

const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
	ansiGreen  = "\x1b[32m"
	ansiReset  = "\x1b[0m"
)

// PrintConsole writes findings grouped by source path, with secrets masked.
// Findings arrive in discovery order and are printed as-is.
func PrintConsole(w io.Writer, findings []types.Finding, opts PrintOptions) {
	color := func(code, s string) string {
		if opts.NoColor {
			return s
		}
		return code + s + ansiReset
	}

	if len(findings) == 0 {
		fmt.Fprintln(w, color(ansiGreen, "No secrets detected"))
		printFooter(w, findings, opts)
		return
	}

	byPath := map[string][]types.Finding{}
	var order []string
	for _, f := range findings {
		if _, ok := byPath[f.Path]; !ok {
			order = append(order, f.Path)
		}
		byPath[f.Path] = append(byPath[f.Path], f)
	}

	fmt.Fprintf(w, "%s: %d finding(s)\n\n", color(ansiRed, "Secrets detected"), len(findings))
	for _, path := range order {
		group := byPath[path]
		fmt.Fprintf(w, "%s (%d)\n", color(ansiCyan, path), len(group))
		for _, f := range group {
			fmt.Fprintf(w, "  [%s] %s\n", color(ansiRed, f.RuleID), f.Description)
			fmt.Fprintf(w, "    line %s", color(ansiYellow, fmt.Sprintf("%d", f.Line)))
			if f.Commit != "" {
				fmt.Fprintf(w, "  commit %s", f.ShortCommit())
			}
			if opts.Verbose {
				fmt.Fprintf(w, "  entropy %.2f", f.Entropy)
			}
			fmt.Fprintf(w, "\n    secret: %s\n", MaskSecret(f.Match))
		}
		fmt.Fprintln(w)
	}
	printFooter(w, findings, opts)
}

func printFooter(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
	if opts.FilesScanned > 0 {
		fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
	}
}

// PrintSummary writes per-rule counts only, for quick CI output.
func PrintSummary(w io.Writer, findings []types.Finding) {
	counts := map[string]int{}
	var order []string
	for _, f := range findings {
		if _, ok := counts[f.RuleID]; !ok {
			order = append(order, f.RuleID)
		}
		counts[f.RuleID]++
	}
	fmt.Fprintf(w, "Findings: %d\n", len(findings))
	for _, id := range order {
		fmt.Fprintf(w, "  %-30s %d\n", id, counts[id])
	}
}

// WriteJSON emits findings as indented JSON for pipelines.
func WriteJSON(w io.Writer, findings []types.Finding) error {
	if findings == nil {
		findings = []types.Finding{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}

// MaskSecret truncates a matched secret for display so reports do not leak
// the full value.
func MaskSecret(s string) string {
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "…" + s[len(s)-4:]
}
