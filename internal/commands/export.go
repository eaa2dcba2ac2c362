package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/tripwiser/internal/export"
)

func newExportCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export <trip-file>",
		Short: "Write a trip summary to an XLSX workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trip, summary, err := loadSummary(args[0])
			if err != nil {
				return err
			}
			if err := export.Save(out, trip, summary); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "report.xlsx", "output workbook path")

	return cmd
}
