package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lavatech-dev/balance/internal/report"
)

func newBalanceCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Print the balance sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, cfg, err := loadSession(*configPath)
			if err != nil {
				return err
			}
			return report.WriteBalanceSheet(cmd.OutOrStdout(), cfg.Company.Name,
				sess.Store().Current(), sess.Totals())
		},
	}
}

func newExportCommand(configPath *string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the balance sheet as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := loadSession(*configPath)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			return report.WriteBalanceCSV(w, sess.Store().Current(), sess.Totals())
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	return cmd
}
