package tags

import "github.com/yohamta/donburi"

var (
	Paddle = donburi.NewTag().SetName("Paddle")
	Ball   = donburi.NewTag().SetName("Ball")
	Wall   = donburi.NewTag().SetName("Wall")

	// Collider marks entities the ball is tested against each tick.
	// The ball itself is the probe, not a collider.
	Collider = donburi.NewTag().SetName("Collider")

	// Goal marks the side walls; a ball overlapping one scores for the
	// opposing player instead of bouncing.
	Goal = donburi.NewTag().SetName("Goal")

	// Left and Right identify which half of the court an entity belongs to.
	Left  = donburi.NewTag().SetName("Left")
	Right = donburi.NewTag().SetName("Right")

	CenterLine = donburi.NewTag().SetName("CenterLine")
)
