package secretscanner

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lincolncommercialsolutions/secret-scanner/internal/config"
	"github.com/lincolncommercialsolutions/secret-scanner/internal/engine"
	"github.com/lincolncommercialsolutions/secret-scanner/internal/report"
	"github.com/lincolncommercialsolutions/secret-scanner/internal/types"
)

var (
	flagGitHistory bool
	flagMaxCommits int
	flagBranch     string
	flagFormat     string
	flagInclude    string
	flagExclude    string
	flagMaxBytes   int64
	flagCache      bool
	flagExitCode   bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan [targets...]",
		Short: "Scan files, directories, or git history for secrets",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVarP(&flagGitHistory, "git-history", "g", false, "scan git commit history instead of current files")
	cmd.Flags().IntVar(&flagMaxCommits, "max-commits", 0, "maximum commits to scan (0 = all)")
	cmd.Flags().StringVar(&flagBranch, "branch", "", "branch to scan in history mode (default HEAD)")
	cmd.Flags().StringVarP(&flagFormat, "format", "f", "console", "output format: console|json|sarif|summary")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip files larger than this during directory scans")
	cmd.Flags().BoolVar(&flagCache, "cache", false, "skip files unchanged since the previous scan")
	cmd.Flags().BoolVar(&flagExitCode, "exit-code", true, "exit with code 1 if secrets are found (for CI)")
}

func runScan(cmd *cobra.Command, targets []string) error {
	cfg, err := config.Load(flagRules)
	if err != nil {
		return err
	}
	if flagVerbose {
		for _, w := range config.Validate(cfg) {
			fmt.Fprintln(os.Stderr, "warning:", w)
		}
	}

	var all []types.Finding
	var filesScanned int
	var elapsed time.Duration
	for _, target := range targets {
		res, err := engine.ScanWithStats(cmd.Context(), engine.Config{
			Target:       target,
			Rules:        cfg.Rules,
			Exclusions:   cfg.Exclusions,
			History:      flagGitHistory,
			MaxCommits:   flagMaxCommits,
			Branch:       flagBranch,
			IncludeGlobs: flagInclude,
			ExcludeGlobs: flagExclude,
			MaxBytes:     flagMaxBytes,
			UseCache:     flagCache,
		})
		if err != nil {
			return fmt.Errorf("scanning %s: %w", target, err)
		}
		for _, sk := range res.SkippedRules {
			fmt.Fprintf(os.Stderr, "warning: rule %s skipped: %v\n", sk.ID, sk.Err)
		}
		all = append(all, res.Findings...)
		filesScanned += res.FilesScanned
		elapsed += res.Duration
	}

	out := cmd.OutOrStdout()
	switch flagFormat {
	case "json":
		if err := report.WriteJSON(out, all); err != nil {
			return err
		}
	case "sarif":
		if err := report.WriteSARIF(out, all, version); err != nil {
			return err
		}
	case "summary":
		report.PrintSummary(out, all)
	case "console":
		report.PrintConsole(out, all, report.PrintOptions{
			NoColor:      flagNoColor,
			Verbose:      flagVerbose,
			Duration:     elapsed,
			FilesScanned: filesScanned,
		})
	default:
		return fmt.Errorf("unknown format %q", flagFormat)
	}

	if flagExitCode && len(all) > 0 {
		os.Exit(1)
	}
	return nil
}
