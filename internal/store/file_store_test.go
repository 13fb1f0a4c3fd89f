package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"smarta/internal/domain"
	"smarta/internal/store"
)

func TestSession_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	var ss domain.SessionStore = store.NewSessionFileStore(home)

	if _, ok, err := ss.LoadSession(); err != nil || ok {
		t.Fatalf("empty home: ok=%v err=%v", ok, err)
	}

	want := domain.Session{
		Screen:      domain.ScreenDashboard,
		LoggedIn:    true,
		HasPin:      true,
		Email:       "budi@example.com",
		PinAttempts: 1,
		LastActive:  time.Date(2025, 12, 20, 9, 0, 0, 0, time.UTC),
	}
	if err := ss.SaveSession(want); err != nil {
		t.Fatalf("save session: %v", err)
	}
	got, ok, err := ss.LoadSession()
	if err != nil || !ok {
		t.Fatalf("load session: ok=%v err=%v", ok, err)
	}
	if got.Screen != want.Screen || got.Email != want.Email || !got.LastActive.Equal(want.LastActive) || got.PinAttempts != 1 {
		t.Fatalf("mismatch after load: %+v", got)
	}
}

func TestSession_CorruptFile_Fails(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, "session.json"), []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := store.NewSessionFileStore(home).LoadSession(); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestPin_SaveLoadDelete(t *testing.T) {
	home := t.TempDir()
	var ps domain.PinStore = store.NewPinFileStore(home)

	rec := domain.PinRecord{V: 1, Salt: []byte{1, 2}, N: 1 << 15, R: 8, P: 1, Hash: []byte{9, 9}}
	if err := ps.SavePin(rec); err != nil {
		t.Fatalf("save pin: %v", err)
	}

	info, err := os.Stat(filepath.Join(home, "pin.json"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("pin.json mode = %o", perm)
	}

	got, ok, err := ps.LoadPin()
	if err != nil || !ok || got.N != rec.N || string(got.Hash) != string(rec.Hash) {
		t.Fatalf("load pin: %+v ok=%v err=%v", got, ok, err)
	}

	if err := ps.DeletePin(); err != nil {
		t.Fatalf("delete pin: %v", err)
	}
	if err := ps.DeletePin(); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if _, ok, _ := ps.LoadPin(); ok {
		t.Fatal("pin still present after delete")
	}
}

func TestCredential_CaseInsensitiveEmail(t *testing.T) {
	home := t.TempDir()
	var cs domain.CredentialStore = store.NewCredentialFileStore(home)

	if err := cs.SaveCredential(domain.Credential{Email: "Budi@Example.com", PassHash: "h1"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := cs.SaveCredential(domain.Credential{Email: "sari@example.com", PassHash: "h2"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := cs.LoadCredential(" budi@example.COM ")
	if err != nil || !ok || got.PassHash != "h1" {
		t.Fatalf("load: %+v ok=%v err=%v", got, ok, err)
	}
	if _, ok, _ := cs.LoadCredential("nobody@example.com"); ok {
		t.Fatal("unexpected credential")
	}
}

func TestSettings_SaveLoad(t *testing.T) {
	home := t.TempDir()
	var st domain.SettingsStore = store.NewSettingsFileStore(home)

	want := domain.SecuritySettings{TwoFactor: false, Biometric: true, TimeoutMinutes: 30}
	if err := st.SaveSettings(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := st.LoadSettings()
	if err != nil || !ok || got != want {
		t.Fatalf("load: %+v ok=%v err=%v", got, ok, err)
	}
}

func TestAccounts_EmptyListIsStored(t *testing.T) {
	home := t.TempDir()
	var as domain.AccountStore = store.NewAccountFileStore(home)

	if err := as.SaveAccounts(nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := as.LoadAccounts()
	if err != nil || !ok || len(got) != 0 {
		t.Fatalf("load: %v ok=%v err=%v", got, ok, err)
	}

	acc := domain.BankAccount{ID: "1", Name: "BCA", Type: domain.AccountBank, Balance: decimal.NewFromInt(5_250_000), Connected: true}
	if err := as.SaveAccounts([]domain.BankAccount{acc}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, _, _ = as.LoadAccounts()
	if len(got) != 1 || !got[0].Balance.Equal(acc.Balance) {
		t.Fatalf("load: %+v", got)
	}
}

func TestChat_SaveLoad(t *testing.T) {
	home := t.TempDir()
	var cs domain.ChatStore = store.NewChatFileStore(home)

	msgs := []domain.ChatMessage{
		{ID: 1, Text: "hai", Sender: domain.SenderAI},
		{ID: 2, Text: "hemat", Sender: domain.SenderUser},
	}
	if err := cs.SaveMessages(msgs); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := cs.LoadMessages()
	if err != nil || !ok || len(got) != 2 || got[1].Sender != domain.SenderUser {
		t.Fatalf("load: %+v ok=%v err=%v", got, ok, err)
	}
}

func TestWipe_LeavesOtherFiles(t *testing.T) {
	home := t.TempDir()
	if err := store.NewSessionFileStore(home).SaveSession(domain.NewSession()); err != nil {
		t.Fatal(err)
	}
	other := filepath.Join(home, "notes.txt")
	if err := os.WriteFile(other, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := store.Wipe(home); err != nil {
		t.Fatalf("wipe: %v", err)
	}
	if _, ok, _ := store.NewSessionFileStore(home).LoadSession(); ok {
		t.Fatal("session survived wipe")
	}
	if _, err := os.Stat(other); err != nil {
		t.Fatalf("unrelated file removed: %v", err)
	}
	entries, _ := os.ReadDir(home)
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".txt" {
			t.Fatalf("leftover %s", e.Name())
		}
	}
}
