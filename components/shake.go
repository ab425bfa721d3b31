package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ShakeData drives the collision screen shake. Tween decays the offset
// magnitude to zero over a few ticks; nil means the camera is at rest.
// Offsets are in screen pixels and applied by the sprite renderer only.
type ShakeData struct {
	Tween   *gween.Tween
	OffsetX float64
	OffsetY float64
}

var Shake = donburi.NewComponentType[ShakeData]()
