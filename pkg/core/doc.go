// Package core provides a small, stable facade over the internal scan engine
// for external integrations. It deliberately re-exports a narrow API surface
// so third-party tools can depend on a stable import path without reaching
// into internal packages.
//
// Example:
//
//	cfg := core.Config{Target: "."}
//	findings, err := core.Scan(context.Background(), cfg)
//	if err != nil { /* handle */ }
//	_ = core.MarshalFindings(os.Stdout, findings)
package core
