package components

import (
	cfg "github.com/automoto/parrybound/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  cfg.Actions
	Previous cfg.Actions
}

var Input = donburi.NewComponentType[InputData]()

// Push shifts the current snapshot into Previous and stores the new one.
func (in *InputData) Push(actions cfg.Actions) {
	in.Previous = in.Current
	in.Current = actions
}

func (in *InputData) Action(id cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      in.Current[id],
		JustPressed:  in.Current[id] && !in.Previous[id],
		JustReleased: !in.Current[id] && in.Previous[id],
	}
}
