package pin

import "strings"

const (
	// Length is the number of PIN digits.
	Length = 6
	// MaxAttempts is how many failed verifications force a new login.
	MaxAttempts = 3
)

// Entry is a fixed row of single-digit slots with a focus cursor.
type Entry struct {
	slots [Length]string
	focus int
}

// Type writes value into slot i. Non-digit input is ignored; only the last
// character is kept. It reports whether this keystroke submits the PIN.
func (e *Entry) Type(i int, value string) bool {
	if i < 0 || i >= Length || !digitsOnly(value) {
		return false
	}
	if value != "" {
		value = value[len(value)-1:]
	}
	e.slots[i] = value
	if value != "" && i < Length-1 {
		e.focus = i + 1
	}
	return i == Length-1 && value != ""
}

// Backspace clears slot i, or moves focus back when it is already empty.
func (e *Entry) Backspace(i int) {
	if i < 0 || i >= Length {
		return
	}
	if e.slots[i] == "" && i > 0 {
		e.focus = i - 1
		return
	}
	e.slots[i] = ""
	e.focus = i
}

// Focus returns the slot that has input focus.
func (e *Entry) Focus() int { return e.focus }

// Slot returns the digit in slot i, or "" if empty.
func (e *Entry) Slot(i int) string {
	if i < 0 || i >= Length {
		return ""
	}
	return e.slots[i]
}

// Complete reports whether every slot holds a digit.
func (e *Entry) Complete() bool {
	for _, d := range e.slots {
		if d == "" {
			return false
		}
	}
	return true
}

func (e *Entry) String() string { return strings.Join(e.slots[:], "") }

// Reset clears all slots and focuses the first one.
func (e *Entry) Reset() {
	e.slots = [Length]string{}
	e.focus = 0
}

// fill types s into fresh slots. Strings longer than Length leave the entry
// incomplete so they can never pass as a valid PIN.
func (e *Entry) fill(s string) {
	e.Reset()
	if len(s) > Length {
		return
	}
	for i := 0; i < len(s); i++ {
		e.Type(i, s[i:i+1])
	}
}

// Valid reports whether s is exactly Length ASCII digits.
func Valid(s string) bool {
	return len(s) == Length && digitsOnly(s)
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
