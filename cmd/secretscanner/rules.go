package secretscanner

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lincolncommercialsolutions/secret-scanner/internal/config"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the effective detection rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(flagRules)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range cfg.Rules {
				desc := r.Description
				if desc == "" {
					desc = r.ID
				}
				fmt.Fprintf(out, "%-28s %s", r.ID, desc)
				if r.Entropy != nil {
					fmt.Fprintf(out, "  (entropy >= %.1f)", *r.Entropy)
				}
				if len(r.Keywords) > 0 {
					fmt.Fprintf(out, "  keywords=%v", r.Keywords)
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "\n%d rules, %d exclusion patterns\n", len(cfg.Rules), len(cfg.Exclusions))
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
