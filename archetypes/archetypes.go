package archetypes

import (
	"github.com/pongarena/pong/components"
	cfg "github.com/pongarena/pong/config"
	"github.com/pongarena/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Paddle = newArchetype(
		tags.Paddle,
		tags.Collider,
		components.Transform,
		components.Sprite,
	)
	Ball = newArchetype(
		tags.Ball,
		components.Transform,
		components.Velocity,
		components.Sprite,
	)
	Wall = newArchetype(
		tags.Wall,
		tags.Collider,
		components.Transform,
		components.Sprite,
	)
	CenterLineSegment = newArchetype(
		tags.CenterLine,
		components.Transform,
		components.Sprite,
	)
	Scoreboard = newArchetype(
		components.Score,
	)
	Shake = newArchetype(
		components.Shake,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
