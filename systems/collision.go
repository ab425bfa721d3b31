package systems

import (
	"github.com/pongarena/pong/components"
	cfg "github.com/pongarena/pong/config"
	"github.com/pongarena/pong/events"
	"github.com/pongarena/pong/gamemath"
	"github.com/pongarena/pong/systems/factory"
	"github.com/pongarena/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions tests the ball against every collider and resolves
// overlaps. Reflection only happens when the ball is still moving into the
// obstacle on the struck axis; a ball that already bounced but whose box
// overlaps for one more tick is left alone. A corner hit may reflect both
// axes in the same tick, one per collider.
func UpdateCollisions(ecs *ecs.ECS) {
	ballEntry, ok := tags.Ball.First(ecs.World)
	if !ok {
		return
	}
	ballT := components.Transform.Get(ballEntry)
	vel := components.Velocity.Get(ballEntry)

	tags.Collider.Each(ecs.World, func(c *donburi.Entry) {
		colliderT := components.Transform.Get(c)
		side, hit := gamemath.Collide(ballT.Pos, ballT.Size, colliderT.Pos, colliderT.Size)
		if !hit {
			return
		}

		// Notify listeners (shake, audio) regardless of how the overlap
		// resolves below.
		events.Collision.Publish(ecs.World, events.CollisionData{})

		if c.HasComponent(tags.Goal) {
			scoreGoal(ecs, c)
			return
		}

		reflectX := false
		reflectY := false

		switch side {
		case gamemath.SideLeft:
			reflectX = vel.X > 0
		case gamemath.SideRight:
			reflectX = vel.X < 0
		case gamemath.SideTop:
			reflectY = vel.Y < 0
		case gamemath.SideBottom:
			reflectY = vel.Y > 0
		case gamemath.SideInside:
			// no reflection
		}

		if reflectX {
			vel.X = -vel.X
		}
		if reflectY {
			vel.Y = -vel.Y
		}
	})
}

// scoreGoal increments the counter opposing the struck goal wall and
// re-serves the ball toward the side that conceded.
func scoreGoal(ecs *ecs.ECS, goal *donburi.Entry) {
	scoreEntry, ok := components.Score.First(ecs.World)
	if !ok {
		return
	}
	score := components.Score.Get(scoreEntry)

	toward := -1.0 // serve back toward the conceding side
	if goal.HasComponent(tags.Left) {
		score.RightScore++
	} else {
		score.LeftScore++
		toward = 1.0
	}

	if ballEntry, ok := tags.Ball.First(ecs.World); ok {
		factory.Serve(ballEntry, toward)
	}

	QueueSFX(ecs, cfg.SoundScore)
}
