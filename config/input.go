package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionLeftPaddleUp
	ActionLeftPaddleDown
	ActionRightPaddleUp
	ActionRightPaddleDown
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action.
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings.
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration.
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionLeftPaddleUp: {
				Keys: []ebiten.Key{ebiten.KeyW},
			},
			ActionLeftPaddleDown: {
				Keys: []ebiten.Key{ebiten.KeyS},
			},
			ActionRightPaddleUp: {
				Keys: []ebiten.Key{ebiten.KeyUp},
			},
			ActionRightPaddleDown: {
				Keys: []ebiten.Key{ebiten.KeyDown},
			},
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}
