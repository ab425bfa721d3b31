package systems

import (
	"sort"

	"github.com/pongarena/pong/components"
	cfg "github.com/pongarena/pong/config"
	"github.com/pongarena/pong/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// worldToScreen maps arena coordinates (origin at the arena center, y up) to
// screen pixels (origin top-left, y down).
func worldToScreen(p gamemath.Vec2) (float32, float32) {
	sx := float64(cfg.C.Width)/2 + p.X
	sy := float64(cfg.C.Height)/2 - p.Y
	return float32(sx), float32(sy)
}

// DrawSprites renders every solid-color sprite, lowest z first so the ball
// draws on top of overlapping sprites. Reads final per-tick state only; the
// simulation never runs concurrently with drawing.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	var shakeX, shakeY float32
	if entry, ok := components.Shake.First(ecs.World); ok {
		shake := components.Shake.Get(entry)
		shakeX = float32(shake.OffsetX)
		shakeY = float32(shake.OffsetY)
	}

	var entries []*donburi.Entry
	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return components.Transform.Get(entries[i]).Z < components.Transform.Get(entries[j]).Z
	})

	for _, e := range entries {
		t := components.Transform.Get(e)
		sprite := components.Sprite.Get(e)
		cx, cy := worldToScreen(t.Pos)
		cx += shakeX
		cy += shakeY

		switch sprite.Shape {
		case components.ShapeCircle:
			vector.DrawFilledCircle(screen, cx, cy, float32(t.Size.X)/2, sprite.Color, true)
		default:
			w := float32(t.Size.X)
			h := float32(t.Size.Y)
			vector.DrawFilledRect(screen, cx-w/2, cy-h/2, w, h, sprite.Color, false)
		}
	}
}
