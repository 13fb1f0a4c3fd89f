package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"smarta/internal/coach"
	"smarta/internal/domain"
)

func coachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coach",
		Short: "Chat with the finance coach",
	}
	cmd.AddCommand(coachAskCmd(), coachHistoryCmd(), coachSuggestCmd())
	return cmd
}

func coachAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask the coach and wait for the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(cmd.Context()); err != nil {
				return err
			}
			_, reply, err := appCtx.Coach.Ask(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			select {
			case msg := <-reply:
				printMessage(cmd.OutOrStdout(), msg)
				return nil
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}
		},
	}
}

func coachHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Print the conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(cmd.Context()); err != nil {
				return err
			}
			msgs, err := appCtx.Coach.History(cmd.Context())
			if err != nil {
				return err
			}
			for _, m := range msgs {
				printMessage(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}
}

func coachSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Print suggested questions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(cmd.Context()); err != nil {
				return err
			}
			qs := appCtx.Coach.Suggestions()
			if qs == nil {
				qs = coach.SuggestedQuestions()
			}
			for _, q := range qs {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", q)
			}
			return nil
		},
	}
}

func printMessage(w io.Writer, m domain.ChatMessage) {
	who := "Anda"
	if m.Sender == domain.SenderAI {
		who = "AI Coach"
	}
	fmt.Fprintf(w, "#%d %s %s\n%s\n\n", m.ID, who, m.Timestamp.Format("15:04"), m.Text)
}
