package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"smarta/internal/domain"
	"smarta/internal/navigation"
	"smarta/internal/store"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current screen and available actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := appCtx.Sessions.Current(cmd.Context())
			if err != nil {
				return err
			}
			printSession(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

// actCmd builds a command that applies a single navigation action.
func actCmd(use, short string, action domain.Action) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := appCtx.Sessions.Act(cmd.Context(), action)
			if err != nil {
				return err
			}
			printSession(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func startCmd() *cobra.Command {
	return actCmd("start", "Leave onboarding and open the terms", domain.ActionStart)
}

func backCmd() *cobra.Command {
	return actCmd("back", "Go back from the current screen", domain.ActionBack)
}

func termsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "terms",
		Short: "Accept or decline the terms and conditions",
	}
	cmd.AddCommand(
		actCmd("accept", "Accept the terms and continue to login", domain.ActionAccept),
		actCmd("decline", "Decline and return to onboarding", domain.ActionDecline),
	)
	return cmd
}

func loginCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Log in, registering the email on first use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := appCtx.Sessions.Login(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			printSession(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func goCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "go <screen>",
		Short: "Open a screen from the menu or the current screen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !navigation.Known(args[0]) {
				fmt.Fprintf(cmd.ErrOrStderr(), "unknown screen %q, opening dashboard\n", args[0])
			}
			s, err := appCtx.Sessions.Navigate(cmd.Context(), domain.Screen(args[0]))
			if err != nil {
				return err
			}
			printSession(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	var cancel bool
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out (or --cancel on the confirmation screen)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				s   domain.Session
				err error
			)
			if cancel {
				s, err = appCtx.Sessions.Act(cmd.Context(), domain.ActionCancel)
			} else {
				s, err = appCtx.Sessions.Logout(cmd.Context())
			}
			if err != nil {
				return err
			}
			printSession(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().BoolVar(&cancel, "cancel", false, "stay logged in and return to the profile")
	return cmd
}

func resetCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Return to onboarding and forget the PIN",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				if err := store.Wipe(appCtx.Config.Home); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "All local data removed.")
				return nil
			}
			if err := appCtx.Sessions.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Reset.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "also forget login, accounts and the coach transcript")
	return cmd
}
