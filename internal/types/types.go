package types

// Finding describes a single rule match against a scanned content block,
// including its location and the entropy of the matched text. Findings are
// value types and are never mutated after the scanner emits them.
type Finding struct {
	RuleID      string  `json:"rule_id"`
	Description string  `json:"description"`
	Match       string  `json:"match"`
	Path        string  `json:"path"`
	Line        int     `json:"line"`
	Commit      string  `json:"commit,omitempty"` // set only for history scans
	Entropy     float64 `json:"entropy"`
}

// ShortCommit returns an abbreviated commit hash suitable for display.
func (f Finding) ShortCommit() string {
	if len(f.Commit) > 8 {
		return f.Commit[:8]
	}
	return f.Commit
}
