package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionDash
	ActionCling
	ActionFloat
	ActionSlowdown
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionRestart
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:       "none",
	ActionMoveLeft:   "moveLeft",
	ActionMoveRight:  "moveRight",
	ActionMoveUp:     "moveUp",
	ActionMoveDown:   "moveDown",
	ActionJump:       "jump",
	ActionDash:       "dash",
	ActionCling:      "wallCling",
	ActionFloat:      "float",
	ActionSlowdown:   "slowDown",
	ActionPause:      "pause",
	ActionMenuUp:     "menuUp",
	ActionMenuDown:   "menuDown",
	ActionMenuSelect: "menuSelect",
	ActionMenuBack:   "menuBack",
	ActionRestart:    "restart",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Actions is a per-tick snapshot of which actions are held
type Actions [ActionCount]bool

// With returns a copy of the snapshot with the given actions held.
func (a Actions) With(ids ...ActionID) Actions {
	for _, id := range ids {
		a[id] = true
	}
	return a
}
