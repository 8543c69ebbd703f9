// Package engine contains the core scanning logic. It dispatches a target to
// the filesystem walker or the history walker, runs the content scanner over
// each block, and returns structured findings. This package is internal;
// external consumers should use the stable facade in pkg/core.
package engine
