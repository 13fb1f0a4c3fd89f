package domain

// Action is a navigation request made from a screen.
type Action string

const (
	ActionStart       Action = "start"
	ActionAccept      Action = "accept"
	ActionDecline     Action = "decline"
	ActionLogin       Action = "login"
	ActionBack        Action = "back"
	ActionPinComplete Action = "pin-complete"
	ActionSkip        Action = "skip"
	ActionPinSuccess  Action = "pin-success"
	ActionLogout      Action = "logout"
	ActionConfirm     Action = "confirm"
	ActionCancel      Action = "cancel"
)

// Open is the action that opens screen s directly.
func Open(s Screen) Action { return Action(s) }
