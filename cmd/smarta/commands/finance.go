package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"smarta/internal/finance"
)

func transactionsCmd() *cobra.Command {
	var category, search string
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List transactions, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(cmd.Context()); err != nil {
				return err
			}
			txs := finance.Search(finance.FilterByCategory(finance.Transactions(), category), search)
			income, expense := finance.Totals(txs)

			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "DATE\tTITLE\tCATEGORY\tAMOUNT")
			for _, t := range txs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Date.Format("02 Jan 2006"), t.Title, t.Category, finance.FormatSigned(t.Amount))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nPemasukan %s · Pengeluaran %s\n", finance.FormatIDR(income), finance.FormatIDR(expense))
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", finance.AllCategories, "category filter")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive text search")
	return cmd
}

func insightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insight",
		Short: "Expense breakdown and month-over-month comparison",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(cmd.Context()); err != nil {
				return err
			}
			in := finance.BuildInsight(finance.ExpenseBreakdown(), finance.MonthlyComparison())
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Total pengeluaran: %s\n\n", finance.FormatIDR(in.TotalExpense))
			w := table(out)
			for _, c := range in.Categories {
				fmt.Fprintf(w, "%s\t%s\t%.1f%%\n", c.Name, finance.FormatIDR(c.Value), c.Percent)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintln(out)
			for _, m := range in.Comparison {
				fmt.Fprintf(out, "%s: pemasukan %s, pengeluaran %s\n", m.Month, finance.FormatIDR(m.Income), finance.FormatIDR(m.Expense))
			}
			fmt.Fprintf(out, "Pemasukan %+.1f%% · Pengeluaran %+.1f%% · Savings rate %.1f%%\n", in.IncomeChange, in.ExpenseChange, in.SavingsRate)
			return nil
		},
	}
}

func goalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goals",
		Short: "Savings goals and the financial health score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(cmd.Context()); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			w := table(out)
			fmt.Fprintln(w, "GOAL\tSAVED\tTARGET\tPROGRESS\tDEADLINE")
			for _, g := range finance.Goals() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.0f%%\t%s\n",
					g.Title, finance.FormatIDR(g.Current), finance.FormatIDR(g.Target),
					finance.GoalProgress(g)*100, g.Deadline.Format("Jan 2006"))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			h := finance.HealthScore(finance.DefaultHealthInputs())
			fmt.Fprintf(out, "\nHealth score: %d/100 (%s)\n", h.Score, h.Band)
			fmt.Fprintf(out, "Savings rate %.1f%% · Dana darurat %.1f bulan · Progress goal %.0f%%\n",
				h.SavingsRate, h.EmergencyMonths, h.GoalProgress*100)
			return nil
		},
	}
}

func notificationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notifications",
		Short: "Show the notification feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(cmd.Context()); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, n := range finance.Notifications() {
				fmt.Fprintf(out, "[%s] %s (%s)\n  %s\n", n.Type, n.Title, n.Time, n.Message)
			}
			return nil
		},
	}
}
