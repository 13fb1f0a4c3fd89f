// Package finance holds the figures behind the dashboard, transactions,
// insight, goal and notification screens.
//
// Seed data is returned as fresh copies so callers may sort or filter it
// freely. All amounts are decimal.Decimal in rupiah; ratios are float64
// percentages or fractions as documented per function.
package finance
