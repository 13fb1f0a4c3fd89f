package navigation

import (
	"fmt"
	"sort"

	"smarta/internal/domain"
)

type transition struct {
	to     domain.Screen
	effect func(*domain.Session)
}

func to(s domain.Screen) transition { return transition{to: s} }

func back(s domain.Screen) map[domain.Action]transition {
	return map[domain.Action]transition{domain.ActionBack: to(s)}
}

var table = map[domain.Screen]map[domain.Action]transition{
	domain.ScreenOnboarding: {
		domain.ActionStart: to(domain.ScreenTerms),
	},
	domain.ScreenTerms: {
		domain.ActionAccept:  to(domain.ScreenLogin),
		domain.ActionDecline: to(domain.ScreenOnboarding),
	},
	domain.ScreenLogin: {
		domain.ActionLogin: to(domain.ScreenSetupPin),
		domain.ActionBack:  to(domain.ScreenTerms),
	},
	domain.ScreenSetupPin: {
		domain.ActionPinComplete: {to: domain.ScreenVerifyPin, effect: func(s *domain.Session) { s.HasPin = true }},
		domain.ActionSkip:        {to: domain.ScreenDashboard, effect: logIn},
	},
	domain.ScreenVerifyPin: {
		domain.ActionPinSuccess: {to: domain.ScreenDashboard, effect: logIn},
		domain.ActionBack:       to(domain.ScreenLogin),
	},
	domain.ScreenDashboard: {
		domain.Open(domain.ScreenNotifications): to(domain.ScreenNotifications),
		domain.Open(domain.ScreenProfile):       to(domain.ScreenProfile),
		domain.Open(domain.ScreenTransactions):  to(domain.ScreenTransactions),
		domain.Open(domain.ScreenInsight):       to(domain.ScreenInsight),
		domain.Open(domain.ScreenCoach):         to(domain.ScreenCoach),
		domain.Open(domain.ScreenGoal):          to(domain.ScreenGoal),
		domain.Open(domain.ScreenLinkBanking):   to(domain.ScreenLinkBanking),
	},
	domain.ScreenTransactions:  back(domain.ScreenDashboard),
	domain.ScreenInsight:       back(domain.ScreenDashboard),
	domain.ScreenCoach:         back(domain.ScreenDashboard),
	domain.ScreenGoal:          back(domain.ScreenDashboard),
	domain.ScreenNotifications: back(domain.ScreenDashboard),
	domain.ScreenLinkBanking:   back(domain.ScreenDashboard),
	domain.ScreenProfile: {
		domain.ActionBack:                       to(domain.ScreenDashboard),
		domain.Open(domain.ScreenNotifications): to(domain.ScreenNotifications),
		domain.Open(domain.ScreenSecurity):      to(domain.ScreenSecurity),
		domain.ActionLogout:                     to(domain.ScreenLogout),
	},
	domain.ScreenSecurity: back(domain.ScreenProfile),
	domain.ScreenLogout: {
		domain.ActionConfirm: {to: domain.ScreenOnboarding, effect: logOut},
		domain.ActionCancel:  to(domain.ScreenProfile),
	},
}

func logIn(s *domain.Session) { s.LoggedIn = true }

func logOut(s *domain.Session) {
	s.LoggedIn = false
	s.HasPin = false
	s.Email = ""
	s.PinAttempts = 0
}

// authScreens never show the sidebar.
var authScreens = map[domain.Screen]bool{
	domain.ScreenOnboarding: true,
	domain.ScreenTerms:      true,
	domain.ScreenLogin:      true,
	domain.ScreenSetupPin:   true,
	domain.ScreenVerifyPin:  true,
	domain.ScreenLogout:     true,
}

// ShowSidebar reports whether the app chrome (sidebar / bottom nav) is shown.
func ShowSidebar(s domain.Session) bool {
	return s.LoggedIn && !authScreens[s.Screen]
}

// Resolve maps a tag to a screen. Unknown tags fall back to the dashboard.
func Resolve(tag string) domain.Screen {
	s := domain.Screen(tag)
	if _, ok := table[s]; ok {
		return s
	}
	return domain.ScreenDashboard
}

// Known reports whether tag names a screen.
func Known(tag string) bool {
	_, ok := table[domain.Screen(tag)]
	return ok
}

// Apply performs action a from the session's current screen.
func Apply(s domain.Session, a domain.Action) (domain.Session, error) {
	t, ok := lookup(s, a)
	if !ok {
		return s, fmt.Errorf("%s on %s: %w", a, s.Screen, domain.ErrActionNotAllowed)
	}
	s.Screen = t.to
	if t.effect != nil {
		t.effect(&s)
	}
	return s, nil
}

func lookup(s domain.Session, a domain.Action) (transition, bool) {
	if t, ok := table[s.Screen][a]; ok {
		return t, true
	}
	if !ShowSidebar(s) {
		return transition{}, false
	}
	for _, item := range sidebar {
		if item.Action == a {
			return to(item.Screen), true
		}
	}
	return transition{}, false
}

// Actions lists every action available from the session's screen, sorted.
func Actions(s domain.Session) []domain.Action {
	seen := make(map[domain.Action]bool)
	for a := range table[s.Screen] {
		seen[a] = true
	}
	if ShowSidebar(s) {
		for _, item := range sidebar {
			seen[item.Action] = true
		}
	}
	out := make([]domain.Action, 0, len(seen))
	for a := range seen {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
