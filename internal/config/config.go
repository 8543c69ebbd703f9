package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lincolncommercialsolutions/secret-scanner/internal/rules"
)

// Config holds a loaded rule set and its shared path exclusion patterns. It
// is read-only for the lifetime of a scan.
type Config struct {
	Rules      []rules.Rule `yaml:"rules"`
	Exclusions []string     `yaml:"exclusions"`
}

// Default returns the built-in rules and exclusions.
func Default() Config {
	return Config{
		Rules:      rules.Defaults(),
		Exclusions: rules.DefaultExclusions(),
	}
}

// Load reads a rules file. An empty path yields Default(). Each rule must
// carry id and pattern; description defaults to the id. Pattern validity is
// not checked here: a malformed pattern is a per-rule non-fatal condition
// handled at compile time, not a reason to reject the whole file.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read rules file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	for i, r := range cfg.Rules {
		if r.ID == "" {
			return Config{}, fmt.Errorf("rule at index %d missing required id", i)
		}
		if r.Pattern == "" {
			return Config{}, fmt.Errorf("rule %q missing required pattern", r.ID)
		}
		if r.Description == "" {
			cfg.Rules[i].Description = r.ID
		}
	}
	return cfg, nil
}

// Validate returns advisory warnings about a loaded configuration. Warnings
// never block a scan.
func Validate(cfg Config) []string {
	var warnings []string
	if len(cfg.Rules) == 0 {
		warnings = append(warnings, "no rules defined in configuration")
	}

	seen := map[string]int{}
	for _, r := range cfg.Rules {
		seen[r.ID]++
	}
	var dups []string
	for _, r := range cfg.Rules {
		if seen[r.ID] > 1 {
			dups = append(dups, r.ID)
			seen[r.ID] = 0
		}
	}
	if len(dups) > 0 {
		warnings = append(warnings, "duplicate rule IDs found: "+strings.Join(dups, ", "))
	}

	for _, r := range cfg.Rules {
		if r.Entropy == nil && len(r.Keywords) == 0 &&
			(strings.Contains(r.ID, "generic") || strings.Contains(r.ID, "password")) {
			warnings = append(warnings, fmt.Sprintf(
				"rule %q has no entropy threshold or keywords (may produce many false positives)", r.ID))
		}
	}
	return warnings
}
