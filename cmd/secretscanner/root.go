package secretscanner

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lincolncommercialsolutions/secret-scanner/internal/logging"
)

var (
	flagRules   string
	flagVerbose bool
	flagNoColor bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the secret-scanner CLI.
var rootCmd = &cobra.Command{
	Use:           "secret-scanner",
	Short:         "Detect secrets and sensitive information in code",
	Long:          "secret-scanner finds embedded credentials, tokens, and high-entropy strings in files, directories, and git history.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return logging.Init(flagVerbose)
	},
}

// Execute runs the CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagRules, "rules", "r", "", "path to custom rules YAML file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose output (show entropy values, skip diagnostics)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
}
