package pin

import (
	"fmt"

	"smarta/internal/domain"
)

const msgLocked = "Terlalu banyak percobaan. Silakan login kembali."

// Verifier checks a candidate PIN.
type Verifier interface {
	VerifyPin(pin string) (bool, error)
}

// VerifierFunc adapts a function to Verifier.
type VerifierFunc func(pin string) (bool, error)

func (f VerifierFunc) VerifyPin(pin string) (bool, error) { return f(pin) }

// AcceptAny passes any syntactically valid PIN.
var AcceptAny Verifier = VerifierFunc(func(pin string) (bool, error) {
	return Valid(pin), nil
})

// Verify checks PIN entries against a Verifier, allowing MaxAttempts
// failures before locking.
type Verify struct {
	entry    Entry
	verifier Verifier
	attempts int
	message  string
}

// NewVerify resumes verification with the given number of failed attempts.
func NewVerify(v Verifier, attempts int) *Verify {
	if attempts < 0 {
		attempts = 0
	}
	return &Verify{verifier: v, attempts: attempts}
}

// Attempts returns the failed attempts so far.
func (v *Verify) Attempts() int { return v.attempts }

// Remaining returns how many attempts are left.
func (v *Verify) Remaining() int {
	if r := MaxAttempts - v.attempts; r > 0 {
		return r
	}
	return 0
}

// Locked reports whether the attempt cap has been reached.
func (v *Verify) Locked() bool { return v.attempts >= MaxAttempts }

// Message returns the error text currently shown, if any.
func (v *Verify) Message() string { return v.message }

// Entry exposes the slots being typed into.
func (v *Verify) Entry() *Entry { return &v.entry }

// Input types value into slot i.
func (v *Verify) Input(i int, value string) Result {
	if !digitsOnly(value) {
		return Result{}
	}
	v.message = ""
	if !v.entry.Type(i, value) {
		return Result{}
	}
	return v.submit()
}

// Backspace applies backspace to slot i.
func (v *Verify) Backspace(i int) { v.entry.Backspace(i) }

// Enter types digits into fresh slots and submits them.
func (v *Verify) Enter(digits string) Result {
	v.message = ""
	v.entry.fill(digits)
	return v.submit()
}

func (v *Verify) submit() Result {
	if v.Locked() {
		v.message = msgLocked
		return Result{Event: EventLocked, Message: msgLocked, Err: domain.ErrTooManyAttempts}
	}
	if v.entry.Complete() {
		ok, err := v.verifier.VerifyPin(v.entry.String())
		if err != nil {
			return Result{Err: err, Remaining: v.Remaining()}
		}
		if ok {
			v.attempts = 0
			return Result{Event: EventSuccess}
		}
	}
	v.attempts++
	if v.Locked() {
		v.message = msgLocked
		return Result{Event: EventLocked, Message: msgLocked, Err: domain.ErrTooManyAttempts}
	}
	v.entry.Reset()
	v.message = fmt.Sprintf("PIN salah. Sisa percobaan: %d", v.Remaining())
	return Result{Event: EventFailed, Message: v.message, Remaining: v.Remaining(), Err: domain.ErrWrongPin}
}
