package components

import (
	cfg "github.com/pongarena/pong/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action.
type ActionState struct {
	Pressed      bool // currently held down
	JustPressed  bool // pressed this tick
	JustReleased bool // released this tick
}

// InputData stores the current and previous tick's pressed state for all
// actions. Singleton; sampled from the keyboard once at the start of each
// tick, read-only for the rest of it.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
