package navigation

import "smarta/internal/domain"

// MenuItem is one entry of the sidebar or bottom navigation.
type MenuItem struct {
	Screen domain.Screen `json:"screen"`
	Action domain.Action `json:"action"`
	Label  string        `json:"label"`
}

// View is the leaf view selected for a session.
type View struct {
	Screen    domain.Screen   `json:"screen"`
	Title     string          `json:"title"`
	Actions   []domain.Action `json:"actions"`
	Sidebar   bool            `json:"sidebar"`
	Menu      []MenuItem      `json:"menu,omitempty"`
	BottomNav []MenuItem      `json:"bottom_nav,omitempty"`
}

var titles = map[domain.Screen]string{
	domain.ScreenOnboarding:    "Selamat Datang",
	domain.ScreenTerms:         "Syarat & Ketentuan",
	domain.ScreenLogin:         "Masuk",
	domain.ScreenSetupPin:      "Buat PIN",
	domain.ScreenVerifyPin:     "Verifikasi PIN",
	domain.ScreenDashboard:     "Dashboard",
	domain.ScreenTransactions:  "Transaksi",
	domain.ScreenInsight:       "Financial Insight",
	domain.ScreenCoach:         "AI Coach",
	domain.ScreenGoal:          "Financial Goal",
	domain.ScreenNotifications: "Notifikasi",
	domain.ScreenProfile:       "Profil",
	domain.ScreenSecurity:      "Keamanan",
	domain.ScreenLinkBanking:   "Link Banking",
	domain.ScreenLogout:        "Keluar",
}

func item(s domain.Screen, label string) MenuItem {
	return MenuItem{Screen: s, Action: domain.Open(s), Label: label}
}

// sidebar is the desktop menu, quick actions and logout, in display order.
var sidebar = []MenuItem{
	item(domain.ScreenDashboard, "Dashboard"),
	item(domain.ScreenTransactions, "Transaksi"),
	item(domain.ScreenInsight, "Financial Insight"),
	item(domain.ScreenCoach, "AI Coach"),
	item(domain.ScreenGoal, "Financial Goal"),
	item(domain.ScreenNotifications, "Notifikasi"),
	item(domain.ScreenProfile, "Profil"),
	item(domain.ScreenSecurity, "Keamanan"),
	item(domain.ScreenLinkBanking, "Link Banking"),
	{Screen: domain.ScreenLogout, Action: domain.ActionLogout, Label: "Keluar"},
}

var bottomNav = []MenuItem{
	item(domain.ScreenDashboard, "Home"),
	item(domain.ScreenTransactions, "Transaksi"),
	item(domain.ScreenInsight, "Insight"),
	item(domain.ScreenCoach, "Coach"),
	item(domain.ScreenProfile, "Profil"),
}

// Title returns the display title of a screen.
func Title(s domain.Screen) string { return titles[Resolve(string(s))] }

// Render selects the view for a session. An unknown screen renders as the
// dashboard.
func Render(s domain.Session) View {
	s.Screen = Resolve(string(s.Screen))
	v := View{
		Screen:  s.Screen,
		Title:   titles[s.Screen],
		Actions: Actions(s),
		Sidebar: ShowSidebar(s),
	}
	if v.Sidebar {
		v.Menu = append([]MenuItem(nil), sidebar...)
		v.BottomNav = append([]MenuItem(nil), bottomNav...)
	}
	return v
}
