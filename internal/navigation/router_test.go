package navigation_test

import (
	"errors"
	"testing"

	"smarta/internal/domain"
	"smarta/internal/navigation"
)

func session(screen domain.Screen, loggedIn bool) domain.Session {
	return domain.Session{Screen: screen, LoggedIn: loggedIn}
}

func TestApply_DeclaredTransitions(t *testing.T) {
	cases := []struct {
		from   domain.Screen
		action domain.Action
		want   domain.Screen
	}{
		{domain.ScreenOnboarding, domain.ActionStart, domain.ScreenTerms},
		{domain.ScreenTerms, domain.ActionAccept, domain.ScreenLogin},
		{domain.ScreenTerms, domain.ActionDecline, domain.ScreenOnboarding},
		{domain.ScreenLogin, domain.ActionLogin, domain.ScreenSetupPin},
		{domain.ScreenLogin, domain.ActionBack, domain.ScreenTerms},
		{domain.ScreenSetupPin, domain.ActionPinComplete, domain.ScreenVerifyPin},
		{domain.ScreenSetupPin, domain.ActionSkip, domain.ScreenDashboard},
		{domain.ScreenVerifyPin, domain.ActionPinSuccess, domain.ScreenDashboard},
		{domain.ScreenVerifyPin, domain.ActionBack, domain.ScreenLogin},
		{domain.ScreenDashboard, domain.Open(domain.ScreenGoal), domain.ScreenGoal},
		{domain.ScreenDashboard, domain.Open(domain.ScreenCoach), domain.ScreenCoach},
		{domain.ScreenDashboard, domain.Open(domain.ScreenNotifications), domain.ScreenNotifications},
		{domain.ScreenTransactions, domain.ActionBack, domain.ScreenDashboard},
		{domain.ScreenProfile, domain.ActionLogout, domain.ScreenLogout},
		{domain.ScreenProfile, domain.Open(domain.ScreenSecurity), domain.ScreenSecurity},
		{domain.ScreenSecurity, domain.ActionBack, domain.ScreenProfile},
		{domain.ScreenLogout, domain.ActionCancel, domain.ScreenProfile},
		{domain.ScreenLogout, domain.ActionConfirm, domain.ScreenOnboarding},
	}
	for _, tc := range cases {
		// Logged out so that only the declared table is consulted.
		got, err := navigation.Apply(session(tc.from, false), tc.action)
		if err != nil {
			t.Fatalf("%s --%s-->: %v", tc.from, tc.action, err)
		}
		if got.Screen != tc.want {
			t.Fatalf("%s --%s--> %s, want %s", tc.from, tc.action, got.Screen, tc.want)
		}
	}
}

func TestApply_Effects(t *testing.T) {
	s, err := navigation.Apply(session(domain.ScreenSetupPin, false), domain.ActionPinComplete)
	if err != nil {
		t.Fatalf("pin-complete: %v", err)
	}
	if !s.HasPin || s.LoggedIn {
		t.Fatalf("pin-complete flags: %+v", s)
	}

	s, err = navigation.Apply(s, domain.ActionPinSuccess)
	if err != nil {
		t.Fatalf("pin-success: %v", err)
	}
	if !s.LoggedIn {
		t.Fatal("pin-success must log in")
	}

	s.Screen = domain.ScreenLogout
	s.Email = "a@b.co"
	s, err = navigation.Apply(s, domain.ActionConfirm)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if s.LoggedIn || s.HasPin || s.Email != "" {
		t.Fatalf("logout must clear the session flags: %+v", s)
	}
}

func TestApply_SkipPinLogsIn(t *testing.T) {
	s, err := navigation.Apply(session(domain.ScreenSetupPin, false), domain.ActionSkip)
	if err != nil {
		t.Fatalf("skip: %v", err)
	}
	if !s.LoggedIn || s.HasPin {
		t.Fatalf("skip flags: %+v", s)
	}
}

func TestApply_UndeclaredRejected(t *testing.T) {
	before := session(domain.ScreenOnboarding, false)
	got, err := navigation.Apply(before, domain.Open(domain.ScreenDashboard))
	if !errors.Is(err, domain.ErrActionNotAllowed) {
		t.Fatalf("expected ErrActionNotAllowed, got %v", err)
	}
	if got != before {
		t.Fatal("rejected action must not change the session")
	}
}

func TestApply_SidebarOnlyWhenLoggedIn(t *testing.T) {
	// Goal screen only declares back; the sidebar adds the rest.
	if _, err := navigation.Apply(session(domain.ScreenGoal, false), domain.Open(domain.ScreenCoach)); err == nil {
		t.Fatal("sidebar navigation must be unavailable while logged out")
	}
	got, err := navigation.Apply(session(domain.ScreenGoal, true), domain.Open(domain.ScreenCoach))
	if err != nil {
		t.Fatalf("sidebar navigation: %v", err)
	}
	if got.Screen != domain.ScreenCoach {
		t.Fatalf("got %s", got.Screen)
	}
	got, err = navigation.Apply(session(domain.ScreenInsight, true), domain.ActionLogout)
	if err != nil || got.Screen != domain.ScreenLogout {
		t.Fatalf("sidebar logout: %v %s", err, got.Screen)
	}
}

func TestShowSidebar(t *testing.T) {
	for _, s := range domain.Screens {
		want := true
		switch s {
		case domain.ScreenOnboarding, domain.ScreenTerms, domain.ScreenLogin,
			domain.ScreenSetupPin, domain.ScreenVerifyPin, domain.ScreenLogout:
			want = false
		}
		if got := navigation.ShowSidebar(session(s, true)); got != want {
			t.Fatalf("ShowSidebar(%s) = %v, want %v", s, got, want)
		}
		if navigation.ShowSidebar(session(s, false)) {
			t.Fatalf("ShowSidebar(%s) while logged out", s)
		}
	}
}

func TestResolve_FallsBackToDashboard(t *testing.T) {
	if got := navigation.Resolve("goal"); got != domain.ScreenGoal {
		t.Fatalf("Resolve(goal) = %s", got)
	}
	for _, tag := range []string{"", "settings", "GOAL"} {
		if got := navigation.Resolve(tag); got != domain.ScreenDashboard {
			t.Fatalf("Resolve(%q) = %s, want dashboard", tag, got)
		}
	}
}

func TestRender(t *testing.T) {
	v := navigation.Render(session(domain.Screen("bogus"), true))
	if v.Screen != domain.ScreenDashboard || v.Title != "Dashboard" {
		t.Fatalf("unknown screen rendered as %s/%q", v.Screen, v.Title)
	}
	if !v.Sidebar || len(v.Menu) == 0 || len(v.BottomNav) != 5 {
		t.Fatalf("logged-in dashboard must carry menus: %+v", v)
	}

	v = navigation.Render(domain.NewSession())
	if v.Sidebar || len(v.Menu) != 0 {
		t.Fatal("onboarding must not show the sidebar")
	}
	if len(v.Actions) != 1 || v.Actions[0] != domain.ActionStart {
		t.Fatalf("onboarding actions = %v", v.Actions)
	}
}
