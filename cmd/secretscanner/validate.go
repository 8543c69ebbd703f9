package secretscanner

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lincolncommercialsolutions/secret-scanner/internal/config"
	"github.com/lincolncommercialsolutions/secret-scanner/internal/rules"
)

func init() {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a rules configuration file",
		Long: `Validate a rules configuration file.

Loads the rules file (or the built-in defaults when --rules is not given),
checks every pattern compiles, and prints any advisory warnings.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(flagRules)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "configuration loaded")
			fmt.Fprintf(out, "  rules: %d\n", len(cfg.Rules))
			fmt.Fprintf(out, "  exclusions: %d\n", len(cfg.Exclusions))

			warnings := config.Validate(cfg)
			set := rules.Compile(cfg.Rules, cfg.Exclusions)
			for _, sk := range set.Skipped {
				warnings = append(warnings, fmt.Sprintf("pattern for %s does not compile: %v", sk.ID, sk.Err))
			}
			if len(warnings) == 0 {
				fmt.Fprintln(out, "no validation warnings")
				return nil
			}
			fmt.Fprintln(out, "warnings:")
			for _, w := range warnings {
				fmt.Fprintf(out, "  - %s\n", w)
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
