package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"smarta/internal/domain"
	"smarta/internal/finance"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage linked bank and e-wallet accounts",
	}
	cmd.AddCommand(accountsListCmd(), accountsProvidersCmd(), accountsConnectCmd(), accountsDisconnectCmd(), accountsLinkCmd())
	return cmd
}

func accountsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List connected and available accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(cmd.Context()); err != nil {
				return err
			}
			ov, err := appCtx.Banking.Accounts(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total saldo: %s\n\n", finance.FormatIDR(ov.Total))

			w := table(out)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tNUMBER\tBALANCE\tSTATUS")
			for _, a := range ov.Connected {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\tconnected\n", a.ID, a.Name, a.Type, a.AccountNumber, finance.FormatIDR(a.Balance))
			}
			for _, a := range ov.Available {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t-\tavailable\n", a.ID, a.Name, a.Type, a.AccountNumber)
			}
			return w.Flush()
		},
	}
}

func accountsProvidersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers [bank|ewallet]",
		Short: "List providers that can be linked",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind domain.AccountType
			if len(args) == 1 {
				kind = domain.AccountType(args[0])
			}
			w := table(cmd.OutOrStdout())
			for _, p := range finance.Providers(kind) {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Name, p.Type)
			}
			return w.Flush()
		},
	}
}

func accountsConnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect <id>",
		Short: "Connect an available account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(cmd.Context()); err != nil {
				return err
			}
			a, err := appCtx.Banking.Connect(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s connected (%s)\n", a.Name, finance.FormatIDR(a.Balance))
			return nil
		},
	}
}

func accountsDisconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect <id>",
		Short: "Disconnect an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(cmd.Context()); err != nil {
				return err
			}
			a, err := appCtx.Banking.Disconnect(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s disconnected\n", a.Name)
			return nil
		},
	}
}

func accountsLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link <bank|ewallet> <provider>",
		Short: "Add a provider as a new account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(cmd.Context()); err != nil {
				return err
			}
			a, err := appCtx.Banking.Link(cmd.Context(), domain.AccountType(args[0]), args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s linked as %s\n", a.Name, a.ID)
			return nil
		},
	}
}
