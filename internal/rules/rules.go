package rules

import (
	"regexp"
	"strings"

	"github.com/lincolncommercialsolutions/secret-scanner/internal/logging"
)

// Rule is one declarative detection rule. Patterns are matched
// case-insensitively with multiline semantics. Entropy and Keywords are
// optional gates: a nil Entropy disables threshold filtering, and an empty
// Keywords slice means the pattern always runs.
type Rule struct {
	ID          string   `yaml:"id" json:"id"`
	Description string   `yaml:"description" json:"description"`
	Pattern     string   `yaml:"pattern" json:"pattern"`
	Entropy     *float64 `yaml:"entropy" json:"entropy,omitempty"`
	Keywords    []string `yaml:"keywords" json:"keywords,omitempty"`
}

// Threshold is a convenience for building rule literals with an entropy gate.
func Threshold(v float64) *float64 { return &v }

// CompiledRule pairs a rule with its compiled pattern and pre-lowered
// keywords. The keyword gate is split from matching on purpose: MightMatch is
// a pure performance short-circuit and must never change which matches
// FindMatches would produce.
type CompiledRule struct {
	Rule
	re       *regexp.Regexp
	keywords []string
}

// MightMatch reports whether the rule could produce matches in content.
// loweredContent must be the lowercased content block; callers lower it once
// per block rather than once per rule.
func (r CompiledRule) MightMatch(loweredContent string) bool {
	if len(r.keywords) == 0 {
		return true
	}
	for _, kw := range r.keywords {
		if strings.Contains(loweredContent, kw) {
			return true
		}
	}
	return false
}

// FindMatches returns the byte offsets of all non-overlapping pattern matches
// in content as [start, end) pairs.
func (r CompiledRule) FindMatches(content string) [][]int {
	return r.re.FindAllStringIndex(content, -1)
}

// SkippedRule records a rule dropped at compile time because its pattern did
// not compile.
type SkippedRule struct {
	ID  string
	Err error
}

// CompiledSet is an immutable rule set compiled once per scan invocation and
// shared across every content block. A malformed rule or exclusion pattern is
// non-fatal: it is skipped with a diagnostic and recorded in Skipped.
type CompiledSet struct {
	Rules      []CompiledRule
	Exclusions []*regexp.Regexp
	Skipped    []SkippedRule
}

// Compile builds a CompiledSet from raw rules and path exclusion patterns.
// Rule order is preserved so findings stay deterministic.
func Compile(rs []Rule, exclusions []string) CompiledSet {
	var set CompiledSet
	for _, r := range rs {
		if r.Description == "" {
			r.Description = r.ID
		}
		re, err := regexp.Compile("(?im)" + r.Pattern)
		if err != nil {
			logging.L().Warnw("skipping rule with invalid pattern", "rule", r.ID, "error", err)
			set.Skipped = append(set.Skipped, SkippedRule{ID: r.ID, Err: err})
			continue
		}
		cr := CompiledRule{Rule: r, re: re}
		for _, kw := range r.Keywords {
			cr.keywords = append(cr.keywords, strings.ToLower(kw))
		}
		set.Rules = append(set.Rules, cr)
	}
	for _, pat := range exclusions {
		re, err := regexp.Compile(pat)
		if err != nil {
			logging.L().Warnw("skipping invalid exclusion pattern", "pattern", pat, "error", err)
			set.Skipped = append(set.Skipped, SkippedRule{ID: "exclusion:" + pat, Err: err})
			continue
		}
		set.Exclusions = append(set.Exclusions, re)
	}
	return set
}

// ExcludedPath reports whether path matches any exclusion pattern. Matching is
// unanchored, so patterns like `node_modules/` hit anywhere in the path.
func (s CompiledSet) ExcludedPath(path string) bool {
	for _, re := range s.Exclusions {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}
