package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func pinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Set up, skip, verify or change the app PIN",
	}
	cmd.AddCommand(pinSetupCmd(), pinSkipCmd(), pinVerifyCmd(), pinChangeCmd())
	return cmd
}

func pinSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup <pin> <confirm>",
		Short: "Create a 6-digit PIN",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := appCtx.Sessions.SetupPin(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			printSession(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func pinSkipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "skip",
		Short: "Continue without a PIN",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := appCtx.Sessions.SkipPin(cmd.Context())
			if err != nil {
				return err
			}
			printSession(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func pinVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <pin>",
		Short: "Verify the PIN to unlock the dashboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := appCtx.Sessions.VerifyPin(cmd.Context(), args[0])
			if s.Screen != "" {
				printSession(cmd.OutOrStdout(), s)
			}
			return err
		},
	}
}

func pinChangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "change <current> <new> <confirm>",
		Short: "Replace the PIN",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Sessions.ChangePin(cmd.Context(), args[0], args[1], args[2]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "PIN changed.")
			return nil
		},
	}
}
