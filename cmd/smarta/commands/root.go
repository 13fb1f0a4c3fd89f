package commands

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"smarta/internal/app"
)

var (
	cfgViper *viper.Viper
	appCtx   *app.Wire
)

// Execute runs the CLI against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cfgViper = app.NewViper()

	root := &cobra.Command{
		Use:          "smarta",
		Short:        "Personal finance companion: screen flow, PIN, insight and coach",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(cfgViper)
			if err != nil {
				return err
			}
			// The CLI answers immediately; replies are not throttled.
			cfg.CoachDelay = 0

			log, err := app.NewLogger(cfg.LogLevel, zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen})
			if err != nil {
				return err
			}
			appCtx, err = app.NewWire(cfg, log)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx == nil {
				return nil
			}
			return appCtx.Close()
		},
	}

	flags := root.PersistentFlags()
	flags.String(app.KeyHome, "", "state dir (default ~/.smarta)")
	flags.String(app.KeyLogLevel, "warn", "log level (debug, info, warn, error)")
	flags.Bool(app.KeyAcceptAnyPin, false, "accept any 6-digit PIN on verification")
	for _, key := range []string{app.KeyHome, app.KeyLogLevel, app.KeyAcceptAnyPin} {
		_ = cfgViper.BindPFlag(key, flags.Lookup(key))
	}

	root.AddCommand(
		statusCmd(), startCmd(), termsCmd(), loginCmd(), goCmd(), backCmd(), logoutCmd(), resetCmd(),
		pinCmd(),
		transactionsCmd(), insightCmd(), goalsCmd(), notificationsCmd(),
		accountsCmd(),
		coachCmd(),
		securityCmd(),
	)
	root.SetOut(os.Stdout)
	return root
}
