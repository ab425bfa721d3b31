package factory

import (
	"math"
	"math/rand"

	"github.com/pongarena/pong/archetypes"
	"github.com/pongarena/pong/components"
	cfg "github.com/pongarena/pong/config"
	"github.com/pongarena/pong/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBall spawns the match ball and serves it toward a random side. The
// ball lives for the whole match; goals re-serve it, never recreate it.
func CreateBall(ecs *ecs.ECS) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)
	components.Sprite.SetValue(ball, components.SpriteData{
		Color: cfg.BallColor,
		Shape: components.ShapeCircle,
	})

	toward := 1.0
	if rand.Intn(2) == 0 {
		toward = -1.0
	}
	Serve(ball, toward)
	return ball
}

// Serve resets the ball to its starting position and gives it a fresh
// velocity at full serve speed: a random angle within 45 degrees of
// horizontal, directed toward the given side (-1 left, +1 right). The
// direction is unit-length by construction, so ball speed is exactly
// cfg.Ball.Speed after every serve.
func Serve(ball *donburi.Entry, toward float64) {
	angle := (rand.Float64()*2 - 1) * math.Pi / 4

	components.Transform.SetValue(ball, components.TransformData{
		Pos:  gamemath.Vec2{X: cfg.Ball.StartX, Y: cfg.Ball.StartY},
		Size: gamemath.Vec2{X: cfg.Ball.Size, Y: cfg.Ball.Size},
		Z:    cfg.Ball.Z,
	})
	components.Velocity.SetValue(ball, components.VelocityData{
		X: math.Cos(angle) * toward * cfg.Ball.Speed,
		Y: math.Sin(angle) * cfg.Ball.Speed,
	})
}
