package detectors

import (
	"math"
	"math/big"
	"strings"
)

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/="

// Shannon returns the Shannon entropy of s in bits per character. An empty
// string or a string with a single distinct character scores 0.
func Shannon(s string) float64 {
	if s == "" {
		return 0
	}
	count := map[rune]int{}
	n := 0
	for _, r := range s {
		count[r]++
		n++
	}
	h := 0.0
	total := float64(n)
	for _, c := range count {
		p := float64(c) / total
		h += -p * math.Log2(p)
	}
	return h
}

// IsBase64 reports whether s looks like base64-encoded data: at least 16
// characters, a length divisible by 4, and >= 95% of characters from the
// base64 alphabet. It is a heuristic and is never used as a filter on its own.
func IsBase64(s string) bool {
	if len(s) < 16 || len(s)%4 != 0 {
		return false
	}
	valid := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(base64Alphabet, s[i]) >= 0 {
			valid++
		}
	}
	return float64(valid)/float64(len(s)) >= 0.95
}

// IsHex reports whether s is at least 16 characters and parses as a base-16
// integer.
func IsHex(s string) bool {
	if len(s) < 16 {
		return false
	}
	_, ok := new(big.Int).SetString(s, 16)
	return ok
}

// Metadata carries diagnostic encoding heuristics alongside an entropy score.
type Metadata struct {
	Entropy     float64 `json:"entropy"`
	Length      int     `json:"length"`
	Base64      bool    `json:"is_base64"`
	Hex         bool    `json:"is_hex"`
	UniqueChars int     `json:"unique_chars"`
	TooShort    bool    `json:"too_short,omitempty"`
}

// Score computes entropy plus encoding metadata for s. Strings shorter than
// minLength score 0 with only the TooShort flag set. This is a reporting
// helper; threshold gating during scanning calls Shannon directly per match.
func Score(s string, minLength int) (float64, Metadata) {
	if len(s) < minLength {
		return 0, Metadata{TooShort: true}
	}
	ent := Shannon(s)
	unique := map[rune]bool{}
	for _, r := range s {
		unique[r] = true
	}
	return ent, Metadata{
		Entropy:     ent,
		Length:      len(s),
		Base64:      IsBase64(s),
		Hex:         IsHex(s),
		UniqueChars: len(unique),
	}
}
