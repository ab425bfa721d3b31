package factory

import (
	"github.com/pongarena/pong/archetypes"
	"github.com/pongarena/pong/components"
	cfg "github.com/pongarena/pong/config"
	"github.com/pongarena/pong/gamemath"
	"github.com/pongarena/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePaddle spawns one paddle, inset from its side wall by the configured
// gap and starting at the vertical center of the arena. side must be
// tags.Left or tags.Right.
func CreatePaddle(ecs *ecs.ECS, side *donburi.ComponentType[donburi.Tag]) *donburi.Entry {
	x := cfg.Arena.RightWall - cfg.Paddle.GapFromSide
	if side == tags.Left {
		x = cfg.Arena.LeftWall + cfg.Paddle.GapFromSide
	}

	paddle := archetypes.Paddle.Spawn(ecs, side)
	components.Transform.SetValue(paddle, components.TransformData{
		Pos:  gamemath.Vec2{X: x, Y: 0},
		Size: gamemath.Vec2{X: cfg.Paddle.Width, Y: cfg.Paddle.Height},
	})
	components.Sprite.SetValue(paddle, components.SpriteData{
		Color: cfg.PaddleColor,
	})
	return paddle
}
