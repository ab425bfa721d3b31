package components

import (
	"github.com/pongarena/pong/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData places an entity in arena coordinates: a center position and
// the full (width, height) extents of its bounding box. Z orders sprites at
// draw time only; it never participates in physics.
type TransformData struct {
	Pos  gamemath.Vec2
	Size gamemath.Vec2
	Z    float64
}

var Transform = donburi.NewComponentType[TransformData]()
