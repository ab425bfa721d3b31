package systems

import (
	"github.com/pongarena/pong/components"
	cfg "github.com/pongarena/pong/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateVelocity advances every moving entity by velocity x timestep,
// independently on each axis. Runs after paddle motion and before collision
// resolution so collisions are detected against post-move positions.
func UpdateVelocity(ecs *ecs.ECS) {
	components.Velocity.Each(ecs.World, func(e *donburi.Entry) {
		vel := components.Velocity.Get(e)
		t := components.Transform.Get(e)
		t.Pos.X += vel.X * cfg.C.TimeStep
		t.Pos.Y += vel.Y * cfg.C.TimeStep
	})
}
