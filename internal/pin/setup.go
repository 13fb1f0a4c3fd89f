package pin

import "smarta/internal/domain"

// Step is the stage of PIN setup.
type Step string

const (
	StepCreate  Step = "create"
	StepConfirm Step = "confirm"
)

const (
	msgMismatch   = "PIN tidak cocok. Silakan coba lagi."
	msgIncomplete = "PIN harus 6 digit."
)

// Setup asks for a PIN twice and completes only when both entries match.
type Setup struct {
	step    Step
	create  Entry
	confirm Entry
	message string
}

// NewSetup starts at the create step.
func NewSetup() *Setup { return &Setup{step: StepCreate} }

// Step returns the current stage.
func (s *Setup) Step() Step { return s.step }

// Message returns the error text currently shown, if any.
func (s *Setup) Message() string { return s.message }

// Current returns the entry the user is typing into.
func (s *Setup) Current() *Entry {
	if s.step == StepConfirm {
		return &s.confirm
	}
	return &s.create
}

// Input types value into slot i of the current entry.
func (s *Setup) Input(i int, value string) Result {
	if !digitsOnly(value) {
		return Result{}
	}
	s.message = ""
	if !s.Current().Type(i, value) {
		return Result{}
	}
	return s.submit()
}

// Backspace applies backspace to slot i of the current entry.
func (s *Setup) Backspace(i int) { s.Current().Backspace(i) }

// Enter types digits into the current entry and submits it.
func (s *Setup) Enter(digits string) Result {
	s.message = ""
	s.Current().fill(digits)
	return s.submit()
}

func (s *Setup) submit() Result {
	if !s.Current().Complete() {
		s.message = msgIncomplete
		return Result{Event: EventIncomplete, Message: msgIncomplete, Err: domain.ErrIncompletePin}
	}
	if s.step == StepCreate {
		s.step = StepConfirm
		s.confirm.Reset()
		return Result{Event: EventAdvanced}
	}
	if s.create.String() != s.confirm.String() {
		s.message = msgMismatch
		s.confirm.Reset()
		return Result{Event: EventMismatch, Message: msgMismatch, Err: domain.ErrPinMismatch}
	}
	return Result{Event: EventCompleted, Pin: s.create.String()}
}
