package systems

import (
	"math/rand"

	"github.com/pongarena/pong/components"
	cfg "github.com/pongarena/pong/config"
	"github.com/pongarena/pong/events"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OnCollision kicks the screen shake and queues the bounce blip. Subscribed
// to the collision event when a match scene is configured.
func OnCollision(w donburi.World, _ events.CollisionData) {
	if entry, ok := components.Shake.First(w); ok {
		shake := components.Shake.Get(entry)
		shake.Tween = gween.New(float32(cfg.Shake.Intensity), 0, float32(cfg.Shake.Ticks), ease.OutQuad)
	}

	if entry, ok := components.Audio.First(w); ok {
		audio := components.Audio.Get(entry)
		audio.PendingSFX = append(audio.PendingSFX, cfg.SoundBounce)
	}
}

// UpdateShake steps the shake tween one tick and rolls a fresh random offset
// at the current magnitude. Offsets return to zero when the tween finishes.
func UpdateShake(ecs *ecs.ECS) {
	entry, ok := components.Shake.First(ecs.World)
	if !ok {
		return
	}
	shake := components.Shake.Get(entry)
	if shake.Tween == nil {
		return
	}

	magnitude, done := shake.Tween.Update(1)
	if done {
		shake.Tween = nil
		shake.OffsetX = 0
		shake.OffsetY = 0
		return
	}

	m := float64(magnitude)
	shake.OffsetX = (rand.Float64()*2 - 1) * m
	shake.OffsetY = (rand.Float64()*2 - 1) * m
}
