package factory

import (
	"github.com/pongarena/pong/archetypes"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScoreboard spawns the match score singleton, both counters at zero.
func CreateScoreboard(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Scoreboard.Spawn(ecs)
}

// CreateShake spawns the screen-shake singleton, initially at rest.
func CreateShake(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Shake.Spawn(ecs)
}

// CreateAudio spawns the pending-SFX queue singleton.
func CreateAudio(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Audio.Spawn(ecs)
}
