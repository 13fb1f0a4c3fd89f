package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"smarta/internal/domain"
	"smarta/internal/navigation"
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// printSession prints where the user is and what they can do from there.
func printSession(w io.Writer, s domain.Session) {
	v := navigation.Render(s)
	fmt.Fprintf(w, "Screen:    %s (%s)\n", v.Title, v.Screen)
	fmt.Fprintf(w, "Logged in: %s\n", yesNo(s.LoggedIn))
	fmt.Fprintf(w, "PIN:       %s\n", yesNo(s.HasPin))
	if s.Email != "" {
		fmt.Fprintf(w, "Email:     %s\n", s.Email)
	}
	actions := make([]string, 0, len(v.Actions))
	for _, a := range v.Actions {
		actions = append(actions, string(a))
	}
	fmt.Fprintf(w, "Actions:   %s\n", strings.Join(actions, ", "))
}

// requireLogin fails unless the session is logged in.
func requireLogin(ctx context.Context) error {
	s, err := appCtx.Sessions.Current(ctx)
	if err != nil {
		return err
	}
	if !s.LoggedIn {
		return fmt.Errorf("not logged in (screen %s)", s.Screen)
	}
	return nil
}
