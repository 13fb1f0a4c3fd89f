package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/crypto/scrypt"

	"smarta/internal/domain"
	"smarta/internal/pin"
)

const (
	// The current supported version of the PIN record stored on disk.
	pinRecordVersion = 1

	saltBytes = 16
	hashBytes = 32
)

// scryptParamsDefault are the KDF costs for new records. Six digits is a
// tiny keyspace, so the work factor is what slows offline guessing.
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }

// HashPin derives a new PIN record with a fresh salt.
func HashPin(digits string) (domain.PinRecord, error) {
	if !pin.Valid(digits) {
		return domain.PinRecord{}, domain.ErrIncompletePin
	}
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return domain.PinRecord{}, err
	}
	N, r, p := scryptParamsDefault()
	hash, err := scrypt.Key([]byte(digits), salt, N, r, p, hashBytes)
	if err != nil {
		return domain.PinRecord{}, err
	}
	return domain.PinRecord{
		V:     pinRecordVersion,
		Salt:  salt,
		N:     N,
		R:     r,
		P:     p,
		Hash:  hash,
		SetAt: time.Now().UTC(),
	}, nil
}

// CheckPin reports whether digits matches rec.
func CheckPin(rec domain.PinRecord, digits string) (bool, error) {
	if rec.V > pinRecordVersion {
		return false, fmt.Errorf("unsupported pin record version %d", rec.V)
	}
	if !pin.Valid(digits) {
		return false, nil
	}
	got, err := scrypt.Key([]byte(digits), rec.Salt, rec.N, rec.R, rec.P, len(rec.Hash))
	if err != nil {
		return false, err
	}
	defer Wipe(got)
	return subtle.ConstantTimeCompare(got, rec.Hash) == 1, nil
}

// HashVerifier checks PINs against the record in a PinStore.
type HashVerifier struct {
	Store domain.PinStore
}

// VerifyPin loads the stored record and compares. A missing record is
// domain.ErrNoPin.
func (v HashVerifier) VerifyPin(digits string) (bool, error) {
	rec, ok, err := v.Store.LoadPin()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, domain.ErrNoPin
	}
	return CheckPin(rec, digits)
}

// Wipe zeroes the provided buffer. This is best-effort and aims to
// reduce the chance of the compiler eliding the write.
//
//go:noinline
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}

// Compile-time assertion that HashVerifier implements pin.Verifier.
var _ pin.Verifier = HashVerifier{}
