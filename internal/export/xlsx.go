// Package export writes trip summaries to spreadsheet workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/mmynk/tripwiser/internal/calculator"
	"github.com/mmynk/tripwiser/internal/models"
)

// Sheet names in workbook order.
const (
	SheetSummary    = "Summary"
	SheetSettlement = "Settlement"
	SheetDaily      = "Daily"
)

// Workbook builds an XLSX workbook with Summary, Settlement and Daily sheets.
// The caller owns the returned file and must Close it.
func Workbook(trip *models.Trip, summary *calculator.Summary) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{SheetSettlement, SheetDaily} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	w := &sheetWriter{f: f}
	w.summary(trip, summary)
	w.settlement(trip, summary.Settlement)
	w.daily(summary.Series)
	if w.err != nil {
		f.Close()
		return nil, w.err
	}
	return f, nil
}

// Write streams the workbook to out.
func Write(out io.Writer, trip *models.Trip, summary *calculator.Summary) error {
	f, err := Workbook(trip, summary)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Save writes the workbook to path.
func Save(path string, trip *models.Trip, summary *calculator.Summary) error {
	f, err := Workbook(trip, summary)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// sheetWriter appends rows and keeps the first error.
type sheetWriter struct {
	f   *excelize.File
	row map[string]int
	err error
}

func (w *sheetWriter) append(sheet string, values ...any) {
	if w.err != nil {
		return
	}
	if w.row == nil {
		w.row = make(map[string]int)
	}
	w.row[sheet]++
	cell, err := excelize.CoordinatesToCellName(1, w.row[sheet])
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetSheetRow(sheet, cell, &values); err != nil {
		w.err = fmt.Errorf("failed to write %s row %d: %w", sheet, w.row[sheet], err)
	}
}

func (w *sheetWriter) blank(sheet string) {
	w.append(sheet)
}

func (w *sheetWriter) summary(trip *models.Trip, s *calculator.Summary) {
	w.append(SheetSummary, "Destination", trip.Destination)
	w.append(SheetSummary, "Start date", trip.Dates.StartString())
	w.append(SheetSummary, "End date", trip.Dates.EndString())
	w.append(SheetSummary, "Total spent", money(s.Aggregates.GrandTotal))
	if s.Budget.HasBudget {
		w.append(SheetSummary, "Total budget", money(s.Budget.TotalBudget))
		w.append(SheetSummary, "Budget used %", money(s.Budget.OverallProgressPct))
	}
	if s.Budget.TripDurationDays != nil {
		w.append(SheetSummary, "Duration (days)", *s.Budget.TripDurationDays)
	}
	if s.Budget.DailyBudget != nil {
		w.append(SheetSummary, "Daily budget", money(*s.Budget.DailyBudget))
	}

	w.blank(SheetSummary)
	w.append(SheetSummary, "Category", "Spent", "Share %", "Budget", "Progress %")
	for _, share := range s.Aggregates.CategoryShares() {
		row := []any{string(share.Category), money(share.Amount), money(share.Percent)}
		if pct, ok := s.Budget.Progress(share.Category); ok {
			row = append(row, money(trip.Budget[share.Category]), money(pct))
		}
		w.append(SheetSummary, row...)
	}

	w.blank(SheetSummary)
	w.append(SheetSummary, "Traveler", "Paid")
	for _, c := range s.Contributions {
		w.append(SheetSummary, c.DisplayName, money(c.Paid))
	}
}

func (w *sheetWriter) settlement(trip *models.Trip, s *calculator.Settlement) {
	names := make(map[string]string, len(trip.Travelers))
	for _, p := range trip.Travelers {
		names[p.ID] = p.DisplayName
	}

	w.append(SheetSettlement, "Traveler", "Paid", "Balance")
	if s == nil {
		return
	}
	for _, b := range s.Balances {
		w.append(SheetSettlement, b.DisplayName, money(b.Paid), money(b.Net))
	}

	w.blank(SheetSettlement)
	w.append(SheetSettlement, "From", "To", "Amount")
	for _, tx := range s.Transactions {
		w.append(SheetSettlement, names[tx.FromParticipantID], names[tx.ToParticipantID], money(tx.Amount))
	}
}

func (w *sheetWriter) daily(series *calculator.Series) {
	header := []any{"Date", "Budget"}
	for _, cat := range models.Categories {
		header = append(header, string(cat))
	}
	header = append(header, "Total")
	w.append(SheetDaily, header...)

	if series == nil {
		return
	}
	for _, day := range series.Days {
		row := []any{day.Date, ""}
		if day.Budget != nil {
			row[1] = money(*day.Budget)
		}
		for _, cat := range models.Categories {
			row = append(row, money(day.ByCategory[cat]))
		}
		row = append(row, money(day.Total))
		w.append(SheetDaily, row...)
	}
	if series.Truncated {
		w.append(SheetDaily, fmt.Sprintf("Truncated at %d days", calculator.MaxSeriesDays))
	}
}

// money rounds to cents for display.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
