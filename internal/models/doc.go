// Package models defines the core domain models for Tripwiser.
//
// # Models
//
//   - Trip: a complete snapshot of one trip (travelers, expenses, budget, dates)
//   - Participant: a traveler sharing the trip's costs
//   - Expense: a single payment made by one traveler
//   - CategoryBudget, DateRange: optional budget configuration
//   - Balance, Transaction: derived settlement output, never persisted
//
// # Design Principles
//
// 1. **Snapshots**: a Trip is always read and written as a whole; there are no patch updates
// 2. **Money is decimal**: amounts use shopspring/decimal so sums do not depend on ordering
// 3. **Avoid circular references**: use ID strings instead of pointers for relationships
// 4. **Equal split**: every traveler owes an equal share of every expense
package models
