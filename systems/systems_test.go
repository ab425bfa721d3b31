package systems

import (
	"github.com/pongarena/pong/archetypes"
	"github.com/pongarena/pong/components"
	cfg "github.com/pongarena/pong/config"
	"github.com/pongarena/pong/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// spawnTestBall places the ball at an explicit position and velocity so
// tests stay deterministic instead of going through the random serve.
func spawnTestBall(e *ecs.ECS, pos gamemath.Vec2, vel components.VelocityData) *donburi.Entry {
	ball := archetypes.Ball.Spawn(e)
	components.Transform.SetValue(ball, components.TransformData{
		Pos:  pos,
		Size: gamemath.Vec2{X: cfg.Ball.Size, Y: cfg.Ball.Size},
		Z:    cfg.Ball.Z,
	})
	components.Velocity.SetValue(ball, vel)
	return ball
}

func pressAction(e *ecs.ECS, ids ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, id := range ids {
		input.Current[id] = true
	}
}
