// Package secretscanner implements the secret-scanner command line interface:
// a root command with shared output flags, a scan subcommand covering
// filesystem and git-history modes, and a rules subcommand listing the
// effective rule set.
package secretscanner
