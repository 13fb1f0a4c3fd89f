package pin

// Event is what a submission did.
type Event int

const (
	EventNone Event = iota
	// EventAdvanced: setup moved from create to confirm.
	EventAdvanced
	// EventCompleted: setup finished; Result.Pin holds the new PIN.
	EventCompleted
	// EventMismatch: the confirmation differed from the created PIN.
	EventMismatch
	// EventIncomplete: setup was submitted with empty slots.
	EventIncomplete
	// EventSuccess: verification passed.
	EventSuccess
	// EventFailed: verification failed with attempts left.
	EventFailed
	// EventLocked: verification failed for the last time.
	EventLocked
)

var eventNames = map[Event]string{
	EventNone:       "none",
	EventAdvanced:   "advanced",
	EventCompleted:  "completed",
	EventMismatch:   "mismatch",
	EventIncomplete: "incomplete",
	EventSuccess:    "success",
	EventFailed:     "failed",
	EventLocked:     "locked",
}

func (e Event) String() string { return eventNames[e] }

// Result describes the outcome of a keystroke or submission. Message is the
// text shown in place on the screen.
type Result struct {
	Event     Event
	Pin       string
	Message   string
	Remaining int
	Err       error
}
