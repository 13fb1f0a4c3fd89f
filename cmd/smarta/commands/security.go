package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"smarta/internal/domain"
)

func securityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "security",
		Short: "Show or change security settings",
	}
	cmd.AddCommand(securityShowCmd(), securitySetCmd())
	return cmd
}

func securityShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print security settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := appCtx.Sessions.Settings(cmd.Context())
			if err != nil {
				return err
			}
			printSettings(cmd.OutOrStdout(), set)
			return nil
		},
	}
}

func securitySetCmd() *cobra.Command {
	var (
		twoFactor bool
		biometric bool
		timeout   int
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change security settings; unset flags keep their value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(cmd.Context()); err != nil {
				return err
			}
			set, err := appCtx.Sessions.Settings(cmd.Context())
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("2fa") {
				set.TwoFactor = twoFactor
			}
			if flags.Changed("biometric") {
				set.Biometric = biometric
			}
			if flags.Changed("timeout") {
				set.TimeoutMinutes = timeout
			}
			if set, err = appCtx.Sessions.UpdateSettings(cmd.Context(), set); err != nil {
				return err
			}
			printSettings(cmd.OutOrStdout(), set)
			return nil
		},
	}
	cmd.Flags().BoolVar(&twoFactor, "2fa", true, "two-factor authentication")
	cmd.Flags().BoolVar(&biometric, "biometric", false, "biometric unlock")
	cmd.Flags().IntVar(&timeout, "timeout", 15, fmt.Sprintf("inactivity timeout in minutes %v", domain.SessionTimeouts))
	return cmd
}

func printSettings(w io.Writer, s domain.SecuritySettings) {
	fmt.Fprintf(w, "Two-factor: %s\n", yesNo(s.TwoFactor))
	fmt.Fprintf(w, "Biometric:  %s\n", yesNo(s.Biometric))
	fmt.Fprintf(w, "Timeout:    %d min\n", s.TimeoutMinutes)
}
