package crypto_test

import (
	"errors"
	"testing"

	"smarta/internal/crypto"
	"smarta/internal/domain"
)

func TestHashPin_CheckPin(t *testing.T) {
	rec, err := crypto.HashPin("314159")
	if err != nil {
		t.Fatalf("HashPin: %v", err)
	}
	if len(rec.Salt) != 16 || len(rec.Hash) != 32 || rec.V != 1 {
		t.Fatalf("unexpected record shape: %+v", rec)
	}

	ok, err := crypto.CheckPin(rec, "314159")
	if err != nil || !ok {
		t.Fatalf("right pin: ok=%v err=%v", ok, err)
	}
	ok, err = crypto.CheckPin(rec, "314158")
	if err != nil || ok {
		t.Fatalf("wrong pin: ok=%v err=%v", ok, err)
	}
}

func TestHashPin_FreshSalt(t *testing.T) {
	a, err := crypto.HashPin("000000")
	if err != nil {
		t.Fatal(err)
	}
	b, err := crypto.HashPin("000000")
	if err != nil {
		t.Fatal(err)
	}
	if string(a.Salt) == string(b.Salt) || string(a.Hash) == string(b.Hash) {
		t.Fatal("two records for the same pin must differ")
	}
}

func TestHashPin_RejectsInvalid(t *testing.T) {
	if _, err := crypto.HashPin("12345"); !errors.Is(err, domain.ErrIncompletePin) {
		t.Fatalf("expected ErrIncompletePin, got %v", err)
	}
}

type memPins struct {
	rec domain.PinRecord
	ok  bool
}

func (m *memPins) SavePin(rec domain.PinRecord) error {
	m.rec, m.ok = rec, true
	return nil
}

func (m *memPins) LoadPin() (domain.PinRecord, bool, error) { return m.rec, m.ok, nil }
func (m *memPins) DeletePin() error                         { m.ok = false; return nil }

func TestHashVerifier(t *testing.T) {
	store := &memPins{}
	v := crypto.HashVerifier{Store: store}

	if _, err := v.VerifyPin("123456"); !errors.Is(err, domain.ErrNoPin) {
		t.Fatalf("expected ErrNoPin, got %v", err)
	}

	rec, err := crypto.HashPin("654321")
	if err != nil {
		t.Fatal(err)
	}
	_ = store.SavePin(rec)

	if ok, _ := v.VerifyPin("654321"); !ok {
		t.Fatal("stored pin must verify")
	}
	if ok, _ := v.VerifyPin("123456"); ok {
		t.Fatal("other pin must not verify")
	}
}

func TestPassword(t *testing.T) {
	if _, err := crypto.HashPassword("short"); !errors.Is(err, domain.ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
	h, err := crypto.HashPassword("correct horse")
	if err != nil {
		t.Fatal(err)
	}
	if err := crypto.CheckPassword(h, "correct horse"); err != nil {
		t.Fatalf("right password: %v", err)
	}
	if err := crypto.CheckPassword(h, "wrong horse!"); !errors.Is(err, domain.ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3}
	crypto.Wipe(b)
	for _, x := range b {
		if x != 0 {
			t.Fatal("not wiped")
		}
	}
}
