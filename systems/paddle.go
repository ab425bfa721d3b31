package systems

import (
	"github.com/pongarena/pong/components"
	cfg "github.com/pongarena/pong/config"
	"github.com/pongarena/pong/gamemath"
	"github.com/pongarena/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PaddleBounds returns the [lower, upper] range the paddle center may occupy,
// keeping the paddle clear of the walls by the configured padding.
func PaddleBounds() (lower, upper float64) {
	upper = cfg.Arena.TopWall - cfg.Arena.WallThickness/2 - cfg.Paddle.Height/2 - cfg.Paddle.Padding
	lower = cfg.Arena.BottomWall + cfg.Arena.WallThickness/2 + cfg.Paddle.Height/2 + cfg.Paddle.Padding
	return lower, upper
}

// UpdatePaddles maps held-key state to paddle motion. Direction is -1, 0 or
// +1 per paddle; the new position is clamped so the paddle never leaves the
// arena. Runs before collision resolution so the ball always tests against
// the paddle's post-move position.
func UpdatePaddles(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	lower, upper := PaddleBounds()

	tags.Paddle.Each(ecs.World, func(e *donburi.Entry) {
		up, down := cfg.ActionRightPaddleUp, cfg.ActionRightPaddleDown
		if e.HasComponent(tags.Left) {
			up, down = cfg.ActionLeftPaddleUp, cfg.ActionLeftPaddleDown
		}

		direction := 0.0
		if GetAction(input, up).Pressed {
			direction += 1.0
		}
		if GetAction(input, down).Pressed {
			direction -= 1.0
		}

		t := components.Transform.Get(e)
		newY := t.Pos.Y + direction*cfg.Paddle.Speed*cfg.C.TimeStep
		t.Pos.Y = gamemath.Clamp(newY, lower, upper)
	})
}
