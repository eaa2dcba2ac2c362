package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tripwiser/internal/models"
)

func insertExpenses(ctx context.Context, q querier, tripID string, expenses []models.Expense) error {
	for i, e := range expenses {
		_, err := q.ExecContext(ctx,
			`INSERT INTO expenses (id, trip_id, description, amount, category, payer_id, occurred_at, location, receipt_ref, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, tripID, e.Description, e.Amount, string(e.Category), e.PayerID,
			e.OccurredAt.Format(time.RFC3339Nano), e.Location, e.ReceiptRef, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense: %w", err)
		}
	}
	return nil
}

func loadExpenses(ctx context.Context, q querier, tripID string) ([]models.Expense, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, description, amount, category, payer_id, occurred_at, location, receipt_ref
		 FROM expenses WHERE trip_id = ? ORDER BY position`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var (
			e          models.Expense
			category   string
			occurredAt string
		)
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &category, &e.PayerID,
			&occurredAt, &e.Location, &e.ReceiptRef); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.Category = models.Category(category)
		// RFC3339 keeps the offset the expense was recorded in.
		if e.OccurredAt, err = time.Parse(time.RFC3339Nano, occurredAt); err != nil {
			return nil, fmt.Errorf("failed to parse expense time: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}

func insertBudget(ctx context.Context, q querier, tripID string, budget models.CategoryBudget) error {
	for cat, amount := range budget {
		_, err := q.ExecContext(ctx,
			"INSERT INTO category_budgets (trip_id, category, amount) VALUES (?, ?, ?)",
			tripID, string(cat), amount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert budget: %w", err)
		}
	}
	return nil
}

// loadBudget returns nil when the trip has no budget rows.
func loadBudget(ctx context.Context, q querier, tripID string) (models.CategoryBudget, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT category, amount FROM category_budgets WHERE trip_id = ?",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	defer rows.Close()

	var budget models.CategoryBudget
	for rows.Next() {
		var (
			category string
			amount   decimal.Decimal
		)
		if err := rows.Scan(&category, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		if budget == nil {
			budget = make(models.CategoryBudget)
		}
		budget[models.Category(category)] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budget: %w", err)
	}
	return budget, nil
}
