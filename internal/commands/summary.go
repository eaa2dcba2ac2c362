package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mmynk/tripwiser/internal/calculator"
	"github.com/mmynk/tripwiser/internal/models"
	"github.com/mmynk/tripwiser/internal/tripfile"
	"github.com/mmynk/tripwiser/pkg/api"
)

func newSummaryCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary <trip-file>",
		Short: "Print balances, transfers and budget figures for a trip file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trip, summary, err := loadSummary(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(api.FromSummary(trip.ID, summary))
			}
			return printSummary(cmd.OutOrStdout(), trip, summary)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")

	return cmd
}

func loadSummary(path string) (*models.Trip, *calculator.Summary, error) {
	trip, err := tripfile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("Trip file loaded", "path", path, "travelers_count", len(trip.Travelers), "expenses_count", len(trip.Expenses))
	summary, err := calculator.Summarize(trip)
	if err != nil {
		return nil, nil, fmt.Errorf("summarizing trip: %w", err)
	}
	return trip, summary, nil
}

func printSummary(out io.Writer, trip *models.Trip, s *calculator.Summary) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\n", trip.Destination)
	if trip.Dates.Complete() {
		fmt.Fprintf(tw, "%s to %s\n", trip.Dates.StartString(), trip.Dates.EndString())
	}
	fmt.Fprintf(tw, "\nTotal spent\t%s\n", amount(s.Aggregates.GrandTotal))
	for _, share := range s.Aggregates.CategoryShares() {
		fmt.Fprintf(tw, "  %s\t%s\t%s%%\n", share.Category, amount(share.Amount), share.Percent.StringFixed(1))
	}

	if s.Budget.HasBudget {
		fmt.Fprintf(tw, "\nBudget\t%s\t%s%% used\n", amount(s.Budget.TotalBudget), s.Budget.OverallProgressPct.StringFixed(1))
		for _, p := range s.Budget.Categories {
			fmt.Fprintf(tw, "  %s\t%s / %s\t%s%%\n", p.Category, amount(p.Spent), amount(p.Budget), p.ProgressPct.StringFixed(1))
		}
	}
	if s.Budget.DailyBudget != nil {
		fmt.Fprintf(tw, "Daily budget\t%s\tover %d days\n", amount(*s.Budget.DailyBudget), *s.Budget.TripDurationDays)
	}

	if len(trip.Travelers) == 0 {
		fmt.Fprintf(tw, "\nNo travelers\n")
		return tw.Flush()
	}

	fmt.Fprintf(tw, "\nBalances\n")
	for _, b := range s.Settlement.Balances {
		fmt.Fprintf(tw, "  %s\tpaid %s\t%s\n", b.DisplayName, amount(b.Paid), amount(b.Net))
	}

	names := make(map[string]string, len(trip.Travelers))
	for _, p := range trip.Travelers {
		names[p.ID] = p.DisplayName
	}
	fmt.Fprintf(tw, "\nTransfers\n")
	if len(s.Settlement.Transactions) == 0 {
		fmt.Fprintf(tw, "  All settled\n")
	}
	for _, tx := range s.Settlement.Transactions {
		fmt.Fprintf(tw, "  %s\t-> %s\t%s\n", names[tx.FromParticipantID], names[tx.ToParticipantID], amount(tx.Amount))
	}

	return tw.Flush()
}

func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
