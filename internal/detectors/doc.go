// Package detectors implements the statistical signals used to qualify
// matches: Shannon entropy and simple encoding heuristics.
package detectors
