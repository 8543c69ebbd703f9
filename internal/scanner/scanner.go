package scanner

import (
	"strings"

	"github.com/lincolncommercialsolutions/secret-scanner/internal/detectors"
	"github.com/lincolncommercialsolutions/secret-scanner/internal/rules"
	"github.com/lincolncommercialsolutions/secret-scanner/internal/types"
)

// Scanner applies a compiled rule set to content blocks. It is the unit of
// logic shared by the file walker and the history walker, holds no mutable
// state, and is safe for concurrent use.
type Scanner struct {
	set rules.CompiledSet
}

// New returns a Scanner over the given compiled rule set.
func New(set rules.CompiledSet) *Scanner {
	return &Scanner{set: set}
}

// ExcludedPath reports whether path is disabled by the configured exclusion
// patterns.
func (s *Scanner) ExcludedPath(path string) bool {
	return s.set.ExcludedPath(path)
}

// ScanContent scans a single content block and returns findings in rule
// order, then match order. path is the logical source of the block; commit is
// empty except for history scans. An excluded path yields no findings
// regardless of content.
func (s *Scanner) ScanContent(content, path, commit string) []types.Finding {
	if s.set.ExcludedPath(path) {
		return nil
	}

	var findings []types.Finding
	var lowered string
	loweredOnce := false

	for _, rule := range s.set.Rules {
		if len(rule.Keywords) > 0 {
			if !loweredOnce {
				lowered = strings.ToLower(content)
				loweredOnce = true
			}
			if !rule.MightMatch(lowered) {
				continue
			}
		}
		for _, loc := range rule.FindMatches(content) {
			match := content[loc[0]:loc[1]]
			ent := detectors.Shannon(match)
			if rule.Entropy != nil && ent < *rule.Entropy {
				continue
			}
			findings = append(findings, types.Finding{
				RuleID:      rule.ID,
				Description: rule.Description,
				Match:       match,
				Path:        path,
				Line:        strings.Count(content[:loc[0]], "\n") + 1,
				Commit:      commit,
				Entropy:     ent,
			})
		}
	}
	return findings
}
